package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/99designs/keyring"
	"github.com/fivetwenty-io/postman-client/internal/constants"
)

// openKeyring opens the credential store. Tests replace it with an
// in-memory keyring.
var openKeyring = func(cfg keyring.Config) (keyring.Keyring, error) {
	return keyring.Open(cfg)
}

// keyringConfig uses the OS keychain where one exists and an encrypted file
// under ~/.postman/keyring otherwise.
func keyringConfig() keyring.Config {
	cfg := keyring.Config{
		ServiceName:      constants.KeyringService,
		FilePasswordFunc: keyring.TerminalPrompt,
	}

	configDir, err := configDirectory()
	if err == nil {
		cfg.FileDir = filepath.Join(configDir, "keyring")
	}

	return cfg
}

func storeAPIKey(apiKey string) error {
	if apiKey == "" {
		return constants.ErrEmptyAPIKey
	}

	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return fmt.Errorf("%w: %w", constants.ErrKeyringUnavailable, err)
	}

	err = ring.Set(keyring.Item{
		Key:         constants.KeyringAPIKeyItem,
		Data:        []byte(apiKey),
		Label:       "Postman API key",
		Description: "API key used by the postman CLI",
	})
	if err != nil {
		return fmt.Errorf("storing API key: %w", err)
	}

	return nil
}

// loadStoredAPIKey returns "" without error when no key has been stored.
func loadStoredAPIKey() (string, error) {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return "", fmt.Errorf("%w: %w", constants.ErrKeyringUnavailable, err)
	}

	item, err := ring.Get(constants.KeyringAPIKeyItem)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}

	return string(item.Data), nil
}

// deleteStoredAPIKey reports whether a key was removed.
func deleteStoredAPIKey() (bool, error) {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return false, fmt.Errorf("%w: %w", constants.ErrKeyringUnavailable, err)
	}

	err = ring.Remove(constants.KeyringAPIKeyItem)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("removing API key: %w", err)
	}

	return true, nil
}
