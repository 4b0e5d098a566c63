package postman

import "context"

// Tag is a workspace, collection or API tag.
type Tag struct {
	Slug string `json:"slug" yaml:"slug"`
}

// Comment is the payload for creating or updating a comment.
type Comment struct {
	Body     string                 `json:"body"               yaml:"body"`
	ThreadID *int                   `json:"threadId,omitempty" yaml:"threadId,omitempty"`
	Tags     map[string]interface{} `json:"tags,omitempty"     yaml:"tags,omitempty"`
}

// ForkListOptions holds optional parameters for listing forks.
type ForkListOptions struct {
	Cursor    string
	Direction string
	Limit     *int
}

// ItemGetOptions holds optional parameters when fetching a folder, request or response.
type ItemGetOptions struct {
	IDs      bool
	UID      bool
	Populate bool
}

// CollectionListOptions holds optional parameters for listing collections.
type CollectionListOptions struct {
	WorkspaceID string
	Name        string
	Limit       *int
	Offset      *int
}

// CollectionGetOptions holds optional parameters for fetching a collection.
type CollectionGetOptions struct {
	AccessKey string
	// Model set to "minimal" returns only the root-level folder and request IDs.
	Model string
}

// CollectionMergeRequest merges a forked collection back into its parent.
type CollectionMergeRequest struct {
	Source      string `json:"source"             yaml:"source"`
	Destination string `json:"destination"        yaml:"destination"`
	Strategy    string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

// SpecGenerationRequest generates a spec from a collection.
type SpecGenerationRequest struct {
	Name   string `json:"name"   yaml:"name"`
	Type   string `json:"type"   yaml:"type"`
	Format string `json:"format" yaml:"format"`
}

// CollectionsClient defines operations for collections.
type CollectionsClient interface {
	List(ctx context.Context, opts *CollectionListOptions) (*Response, error)
	Get(ctx context.Context, collectionID string, opts *CollectionGetOptions) (*Response, error)
	Create(ctx context.Context, workspaceID string, collection interface{}) (*Response, error)
	Replace(ctx context.Context, collectionID string, collection interface{}) (*Response, error)
	Patch(ctx context.Context, collectionID string, collection interface{}) (*Response, error)
	Delete(ctx context.Context, collectionID string) (*Response, error)
	Fork(ctx context.Context, collectionID, workspaceID, label string) (*Response, error)
	ListForks(ctx context.Context, collectionID string, opts *ForkListOptions) (*Response, error)
	Merge(ctx context.Context, request *CollectionMergeRequest) (*Response, error)
	GetTags(ctx context.Context, collectionUID string) (*Response, error)
	UpdateTags(ctx context.Context, collectionUID string, tags []Tag) (*Response, error)
	Transform(ctx context.Context, collectionID string) (*Response, error)
	GenerateSpec(ctx context.Context, collectionUID string, request *SpecGenerationRequest) (*Response, error)
	SyncWithSpec(ctx context.Context, collectionUID, specID string) (*Response, error)
	ListComments(ctx context.Context, collectionUID string) (*Response, error)
	CreateComment(ctx context.Context, collectionUID string, comment *Comment) (*Response, error)
	UpdateComment(ctx context.Context, collectionUID string, commentID int, comment *Comment) (*Response, error)
	DeleteComment(ctx context.Context, collectionUID string, commentID int) (*Response, error)
}

// FoldersClient defines operations for collection folders.
type FoldersClient interface {
	Create(ctx context.Context, collectionID string, folder interface{}) (*Response, error)
	Get(ctx context.Context, collectionID, folderID string, opts *ItemGetOptions) (*Response, error)
	Update(ctx context.Context, collectionID, folderID string, folder interface{}) (*Response, error)
	Delete(ctx context.Context, collectionID, folderID string) (*Response, error)
	ListComments(ctx context.Context, collectionUID, folderUID string) (*Response, error)
	CreateComment(ctx context.Context, collectionUID, folderUID string, comment *Comment) (*Response, error)
	UpdateComment(ctx context.Context, collectionUID, folderUID string, commentID int, comment *Comment) (*Response, error)
	DeleteComment(ctx context.Context, collectionUID, folderUID string, commentID int) (*Response, error)
}

// RequestCreateOptions holds optional parameters for creating a request.
type RequestCreateOptions struct {
	FolderID string
}

// RequestsClient defines operations for collection requests.
type RequestsClient interface {
	Create(ctx context.Context, collectionID string, request interface{}, opts *RequestCreateOptions) (*Response, error)
	Get(ctx context.Context, collectionID, requestID string, opts *ItemGetOptions) (*Response, error)
	Update(ctx context.Context, collectionID, requestID string, request interface{}) (*Response, error)
	Delete(ctx context.Context, collectionID, requestID string) (*Response, error)
	ListComments(ctx context.Context, collectionUID, requestUID string) (*Response, error)
	CreateComment(ctx context.Context, collectionUID, requestUID string, comment *Comment) (*Response, error)
	UpdateComment(ctx context.Context, collectionUID, requestUID string, commentID int, comment *Comment) (*Response, error)
	DeleteComment(ctx context.Context, collectionUID, requestUID string, commentID int) (*Response, error)
}

// ResponsesClient defines operations for saved request responses.
type ResponsesClient interface {
	Create(ctx context.Context, collectionID, requestID string, response interface{}) (*Response, error)
	Get(ctx context.Context, collectionID, responseID string, opts *ItemGetOptions) (*Response, error)
	Update(ctx context.Context, collectionID, responseID string, response interface{}) (*Response, error)
	Delete(ctx context.Context, collectionID, responseID string) (*Response, error)
	ListComments(ctx context.Context, collectionUID, responseUID string) (*Response, error)
	CreateComment(ctx context.Context, collectionUID, responseUID string, comment *Comment) (*Response, error)
	UpdateComment(ctx context.Context, collectionUID, responseUID string, commentID int, comment *Comment) (*Response, error)
	DeleteComment(ctx context.Context, collectionUID, responseUID string, commentID int) (*Response, error)
}

// EnvironmentsClient defines operations for environments.
type EnvironmentsClient interface {
	List(ctx context.Context, workspaceID string) (*Response, error)
	Get(ctx context.Context, environmentID string) (*Response, error)
	Create(ctx context.Context, workspaceID string, environment interface{}) (*Response, error)
	Replace(ctx context.Context, environmentID string, environment interface{}) (*Response, error)
	Delete(ctx context.Context, environmentID string) (*Response, error)
	Fork(ctx context.Context, environmentUID, workspaceID, forkName string) (*Response, error)
	ListForks(ctx context.Context, environmentUID string, opts *ForkListOptions) (*Response, error)
	Merge(ctx context.Context, environmentUID, sourceUID string, deleteSource bool) (*Response, error)
	Pull(ctx context.Context, environmentUID, sourceUID string) (*Response, error)
}

// MockListOptions holds optional parameters for listing mocks.
type MockListOptions struct {
	TeamID      string
	WorkspaceID string
}

// CallLogListOptions holds optional parameters for listing mock call logs.
type CallLogListOptions struct {
	Limit              *int
	Cursor             string
	Until              string
	Since              string
	ResponseStatusCode *int
	ResponseType       string
	RequestMethod      string
	RequestPath        string
	Sort               string
	Direction          string
	Include            string
}

// MocksClient defines operations for mock servers.
type MocksClient interface {
	List(ctx context.Context, opts *MockListOptions) (*Response, error)
	Get(ctx context.Context, mockID string) (*Response, error)
	Create(ctx context.Context, workspaceID string, mock interface{}) (*Response, error)
	Update(ctx context.Context, mockID string, mock interface{}) (*Response, error)
	Delete(ctx context.Context, mockID string) (*Response, error)
	ListCallLogs(ctx context.Context, mockID string, opts *CallLogListOptions) (*Response, error)
	Publish(ctx context.Context, mockID string) (*Response, error)
	Unpublish(ctx context.Context, mockID string) (*Response, error)
	ListServerResponses(ctx context.Context, mockID string) (*Response, error)
	GetServerResponse(ctx context.Context, mockID, serverResponseID string) (*Response, error)
	CreateServerResponse(ctx context.Context, mockID string, serverResponse interface{}) (*Response, error)
	UpdateServerResponse(ctx context.Context, mockID, serverResponseID string, serverResponse interface{}) (*Response, error)
	DeleteServerResponse(ctx context.Context, mockID, serverResponseID string) (*Response, error)
}

// MonitorSchedule is a monitor's run schedule.
type MonitorSchedule struct {
	Cron     string `json:"cron"     yaml:"cron"`
	Timezone string `json:"timezone" yaml:"timezone"`
}

// MonitorDefinition is the payload for creating a monitor. Collection and
// Environment reference their targets by UID.
type MonitorDefinition struct {
	Name        string           `json:"name"                  yaml:"name"`
	Collection  string           `json:"collection"            yaml:"collection"`
	Environment string           `json:"environment,omitempty" yaml:"environment,omitempty"`
	Schedule    *MonitorSchedule `json:"schedule,omitempty"    yaml:"schedule,omitempty"`
}

// MonitorsClient defines operations for monitors.
type MonitorsClient interface {
	List(ctx context.Context, workspaceID string) (*Response, error)
	Get(ctx context.Context, monitorID string) (*Response, error)
	Create(ctx context.Context, workspaceID string, monitor *MonitorDefinition) (*Response, error)
	Update(ctx context.Context, monitorID string, monitor interface{}) (*Response, error)
	Delete(ctx context.Context, monitorID string) (*Response, error)
	Run(ctx context.Context, monitorID string) (*Response, error)
}

// SpecFile is a single file of a Spec Hub spec.
type SpecFile struct {
	Path    string `json:"path"           yaml:"path"`
	Content string `json:"content"        yaml:"content"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
}

// SpecCreateRequest is the payload for creating a spec.
type SpecCreateRequest struct {
	Name  string     `json:"name"  yaml:"name"`
	Type  string     `json:"type"  yaml:"type"`
	Files []SpecFile `json:"files" yaml:"files"`
}

// SpecFileUpdate holds the fields of a spec file that can be changed.
type SpecFileUpdate struct {
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Name    string `json:"name,omitempty"    yaml:"name,omitempty"`
	Type    string `json:"type,omitempty"    yaml:"type,omitempty"`
}

// SpecListOptions holds parameters for listing specs. WorkspaceID is required.
type SpecListOptions struct {
	WorkspaceID string
	Cursor      string
	Limit       *int
}

// CollectionGenerationRequest generates a collection from a spec.
type CollectionGenerationRequest struct {
	Name    string                 `json:"name"              yaml:"name"`
	Options map[string]interface{} `json:"options,omitempty" yaml:"options,omitempty"`
}

// SpecsClient defines operations for Spec Hub specs.
type SpecsClient interface {
	List(ctx context.Context, opts *SpecListOptions) (*Response, error)
	Get(ctx context.Context, specID string) (*Response, error)
	Create(ctx context.Context, workspaceID string, spec *SpecCreateRequest) (*Response, error)
	Update(ctx context.Context, specID, name string) (*Response, error)
	Delete(ctx context.Context, specID string) (*Response, error)
	GetDefinition(ctx context.Context, specID string) (*Response, error)
	ListFiles(ctx context.Context, specID string) (*Response, error)
	GetFile(ctx context.Context, specID, filePath string) (*Response, error)
	CreateFile(ctx context.Context, specID string, file *SpecFile) (*Response, error)
	UpdateFile(ctx context.Context, specID, filePath string, update *SpecFileUpdate) (*Response, error)
	DeleteFile(ctx context.Context, specID, filePath string) (*Response, error)
	GenerateCollection(ctx context.Context, specID string, request *CollectionGenerationRequest) (*Response, error)
	ListGeneratedCollections(ctx context.Context, specID string) (*Response, error)
	GetTask(ctx context.Context, specID, taskID string) (*Response, error)
	SyncWithCollection(ctx context.Context, specID, collectionUID string) (*Response, error)
}

// WorkspaceListOptions holds optional parameters for listing workspaces.
type WorkspaceListOptions struct {
	Type      string
	CreatedBy string
	Include   string
}

// GlobalVariable is a workspace global variable.
type GlobalVariable struct {
	Key     string `json:"key"            yaml:"key"`
	Value   string `json:"value"          yaml:"value"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Enabled bool   `json:"enabled"        yaml:"enabled"`
}

// RoleOperation is a single JSON Patch style role change.
type RoleOperation struct {
	Op    string      `json:"op"    yaml:"op"`
	Path  string      `json:"path"  yaml:"path"`
	Value interface{} `json:"value" yaml:"value"`
}

// WorkspacesClient defines operations for workspaces.
type WorkspacesClient interface {
	List(ctx context.Context, opts *WorkspaceListOptions) (*Response, error)
	Get(ctx context.Context, workspaceID, include string) (*Response, error)
	Create(ctx context.Context, workspace interface{}) (*Response, error)
	Update(ctx context.Context, workspaceID string, workspace interface{}) (*Response, error)
	Delete(ctx context.Context, workspaceID string) (*Response, error)
	GetGlobalVariables(ctx context.Context, workspaceID string) (*Response, error)
	UpdateGlobalVariables(ctx context.Context, workspaceID string, values []GlobalVariable) (*Response, error)
	GetTags(ctx context.Context, workspaceID string) (*Response, error)
	UpdateTags(ctx context.Context, workspaceID string, tags []Tag) (*Response, error)
	ListRoles(ctx context.Context, workspaceID string) (*Response, error)
	UpdateRoles(ctx context.Context, workspaceID string, roles []RoleOperation) (*Response, error)
}

// PullRequestAction is a review action on a pull request.
type PullRequestAction string

// Pull request review actions.
const (
	PullRequestApprove   PullRequestAction = "approve"
	PullRequestUnapprove PullRequestAction = "unapprove"
	PullRequestDecline   PullRequestAction = "decline"
	PullRequestMerge     PullRequestAction = "merge"
)

// PullRequestListOptions holds optional parameters for listing pull requests.
type PullRequestListOptions struct {
	CreatedBy string
	Status    string
	Direction string
	Limit     *int
	Offset    *int
}

// PullRequestCreateRequest is the payload for opening a pull request.
// DestinationID is the UID of the parent collection.
type PullRequestCreateRequest struct {
	Title         string   `json:"title"                 yaml:"title"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Reviewers     []string `json:"reviewers,omitempty"   yaml:"reviewers,omitempty"`
	DestinationID string   `json:"destinationId"         yaml:"destinationId"`
}

// PullRequestUpdateRequest is the payload for updating a pull request.
type PullRequestUpdateRequest struct {
	Title       string   `json:"title"                 yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Reviewers   []string `json:"reviewers"             yaml:"reviewers"`
}

// PullRequestsClient defines operations for pull requests.
type PullRequestsClient interface {
	ListForCollection(ctx context.Context, collectionUID string, opts *PullRequestListOptions) (*Response, error)
	Create(ctx context.Context, collectionUID string, request *PullRequestCreateRequest) (*Response, error)
	Get(ctx context.Context, pullRequestID string) (*Response, error)
	Update(ctx context.Context, pullRequestID string, request *PullRequestUpdateRequest) (*Response, error)
	Review(ctx context.Context, pullRequestID string, action PullRequestAction, comment string) (*Response, error)
}

// UsersClient defines operations for the authenticated user and team members.
type UsersClient interface {
	Me(ctx context.Context) (*Response, error)
	List(ctx context.Context) (*Response, error)
	Get(ctx context.Context, userID string) (*Response, error)
}

// TagEntitiesOptions holds optional parameters for listing tagged entities.
type TagEntitiesOptions struct {
	Limit      *int
	Direction  string
	Cursor     string
	EntityType string
}

// TagsClient defines operations on tags.
type TagsClient interface {
	ListEntities(ctx context.Context, slug string, opts *TagEntitiesOptions) (*Response, error)
}

// Int returns a pointer to v, for optional integer fields.
func Int(v int) *int {
	return &v
}
