package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	syncActionCreated = "created"
	syncActionUpdated = "updated"
)

// specFile is a local file of a multi-file spec. Path is relative to the
// spec directory with forward slashes.
type specFile struct {
	Path    string
	Content string
	Root    bool
}

// specHeader holds the top-level keys used to recognise a root file.
type specHeader struct {
	OpenAPI  string `yaml:"openapi"`
	AsyncAPI string `yaml:"asyncapi"`
	Info     struct {
		Title string `yaml:"title"`
	} `yaml:"info"`
}

type syncOptions struct {
	workspaceID   string
	specID        string
	name          string
	specType      string
	collectionUID string
}

type syncResult struct {
	mu      sync.Mutex
	actions map[string]string
}

func (r *syncResult) record(path, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions[path] = action
}

// NewSyncCommand creates the sync command.
func NewSyncCommand() *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:   "sync DIRECTORY",
		Short: "Upload a local spec directory to the Spec Hub",
		Long: `Upload every .yaml, .yml and .json file under DIRECTORY to a Spec Hub spec.

Without --spec-id a new spec is created in --workspace. Its type is detected
from the openapi or asyncapi key of the root file unless --type is given.
With --spec-id, files already in the spec are updated and new ones created.
Pass --collection to sync a collection with the spec afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.workspaceID, "workspace", "w", "", "workspace for a new spec")
	cmd.Flags().StringVar(&opts.specID, "spec-id", "", "existing spec to update")
	cmd.Flags().StringVar(&opts.name, "name", "", "name for a new spec (default: info.title)")
	cmd.Flags().StringVar(&opts.specType, "type", "", "spec type, e.g. OPENAPI:3.0")
	cmd.Flags().StringVar(&opts.collectionUID, "collection", "", "collection UID to sync with the spec")

	return cmd
}

func runSync(cmd *cobra.Command, dir string, opts *syncOptions) error {
	files, err := collectSpecFiles(dir)
	if err != nil {
		return err
	}

	root, header, err := findRootFile(files)
	if err != nil {
		return err
	}

	root.Root = true

	client, err := createClient(cmd)
	if err != nil {
		return err
	}

	result := &syncResult{actions: make(map[string]string, len(files))}
	specID := opts.specID

	if specID == "" {
		specID, err = createSpec(cmd, client, files, header, opts)
		if err != nil {
			return err
		}

		for _, file := range files {
			result.record(file.Path, syncActionCreated)
		}
	} else {
		err = uploadFiles(cmd, client, specID, files, result)
		if err != nil {
			return err
		}
	}

	if opts.collectionUID != "" {
		_, err = client.Collections().SyncWithSpec(cmd.Context(), opts.collectionUID, specID)
		if err != nil {
			return fmt.Errorf("failed to sync collection with spec: %w", err)
		}
	}

	return renderSyncResult(cmd, specID, result)
}

// collectSpecFiles reads all spec files under dir in path order.
func collectSpecFiles(dir string) ([]*specFile, error) {
	var files []*specFile

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json":
		default:
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}

		files = append(files, &specFile{Path: filepath.ToSlash(rel), Content: string(content)})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read spec directory: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", constants.ErrNoSpecFiles, dir)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, nil
}

// findRootFile returns the first file carrying an openapi or asyncapi key.
// JSON parses as YAML so one decoder serves both.
func findRootFile(files []*specFile) (*specFile, *specHeader, error) {
	for _, file := range files {
		var header specHeader

		err := yaml.Unmarshal([]byte(file.Content), &header)
		if err != nil {
			continue
		}

		if header.OpenAPI != "" || header.AsyncAPI != "" {
			return file, &header, nil
		}
	}

	return nil, nil, constants.ErrNoRootFile
}

// detectSpecType maps the root file version keys to a Spec Hub type.
func detectSpecType(header *specHeader) (string, error) {
	switch {
	case strings.HasPrefix(header.OpenAPI, "3.0"):
		return constants.SpecTypeOpenAPI30, nil
	case strings.HasPrefix(header.OpenAPI, "3.1"):
		return constants.SpecTypeOpenAPI31, nil
	case strings.HasPrefix(header.AsyncAPI, "2."):
		return constants.SpecTypeAsyncAPI20, nil
	default:
		return "", constants.ErrUnknownSpecType
	}
}

func createSpec(cmd *cobra.Command, client postman.Client, files []*specFile, header *specHeader, opts *syncOptions) (string, error) {
	if opts.workspaceID == "" {
		return "", constants.ErrWorkspaceRequired
	}

	name := opts.name
	if name == "" {
		name = header.Info.Title
	}

	if name == "" {
		return "", constants.ErrNameRequired
	}

	specType := opts.specType
	if specType == "" {
		detected, err := detectSpecType(header)
		if err != nil {
			return "", err
		}

		specType = detected
	}

	request := &postman.SpecCreateRequest{Name: name, Type: specType}
	for _, file := range files {
		fileType := constants.SpecFileTypeDefault
		if file.Root {
			fileType = constants.SpecFileTypeRoot
		}

		request.Files = append(request.Files, postman.SpecFile{Path: file.Path, Content: file.Content, Type: fileType})
	}

	resp, err := client.Specs().Create(cmd.Context(), opts.workspaceID, request)
	if err != nil {
		return "", fmt.Errorf("failed to create spec: %w", err)
	}

	var created struct {
		ID string `json:"id"`
	}

	err = resp.Decode(&created)
	if err != nil {
		return "", err
	}

	if created.ID == "" {
		return "", constants.ErrMissingSpecID
	}

	return created.ID, nil
}

// uploadFiles updates files the spec already has and creates the rest.
func uploadFiles(cmd *cobra.Command, client postman.Client, specID string, files []*specFile, result *syncResult) error {
	resp, err := client.Specs().ListFiles(cmd.Context(), specID)
	if err != nil {
		return fmt.Errorf("failed to list spec files: %w", err)
	}

	var listing struct {
		Files []struct {
			Path string `json:"path"`
		} `json:"files"`
	}

	err = resp.Decode(&listing)
	if err != nil {
		return err
	}

	existing := make(map[string]bool, len(listing.Files))
	for _, file := range listing.Files {
		existing[file.Path] = true
	}

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(constants.DefaultConcurrencyLimit)

	for _, file := range files {
		file := file
		group.Go(func() error {
			if existing[file.Path] {
				_, err := client.Specs().UpdateFile(ctx, specID, file.Path, &postman.SpecFileUpdate{Content: file.Content})
				if err != nil {
					return fmt.Errorf("failed to update %s: %w", file.Path, err)
				}

				result.record(file.Path, syncActionUpdated)

				return nil
			}

			newFile := &postman.SpecFile{Path: file.Path, Content: file.Content}
			if file.Root {
				newFile.Type = constants.SpecFileTypeRoot
			}

			_, err := client.Specs().CreateFile(ctx, specID, newFile)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", file.Path, err)
			}

			result.record(file.Path, syncActionCreated)

			return nil
		})
	}

	return group.Wait()
}

func renderSyncResult(cmd *cobra.Command, specID string, result *syncResult) error {
	paths := make([]string, 0, len(result.actions))
	for path := range result.actions {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	files := make([]interface{}, 0, len(paths))
	for _, path := range paths {
		files = append(files, map[string]interface{}{"path": path, "action": result.actions[path]})
	}

	summary := map[string]interface{}{"specId": specID, "files": files}

	return render(cmd.OutOrStdout(), summary, &tableView{
		Key: "files",
		Columns: []column{
			{Header: "Path", Field: "path"},
			{Header: "Action", Field: "action"},
		},
	})
}
