package gdrive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/assetra/assetra-cli/internal/core/ports"
)

const folderMimeType = "application/vnd.google-apps.folder"

// DriveStore implements the DocumentStore port against Google Drive. All
// folders it creates live under one configured root folder.
type DriveStore struct {
	svc          *drive.Service
	rootFolderID string
	logger       *zap.Logger
}

// NewDriveStore creates a store authenticated with a service-account
// credentials file.
func NewDriveStore(ctx context.Context, credentialsFile, rootFolderID string, logger *zap.Logger) (*DriveStore, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive client: %w", err)
	}
	return &DriveStore{
		svc:          svc,
		rootFolderID: rootFolderID,
		logger:       logger,
	}, nil
}

// Ensure it implements the interface
var _ ports.DocumentStore = (*DriveStore)(nil)

// CreateFolder creates a folder and returns its id. An empty parent means
// the configured root folder.
func (s *DriveStore) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if parentID == "" {
		parentID = s.rootFolderID
	}

	meta := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}
	created, err := s.svc.Files.Create(meta).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", name, err)
	}

	s.logger.Debug("created folder",
		zap.String("name", name), zap.String("id", created.Id))
	return created.Id, nil
}

// UploadFile uploads a local file into a folder and returns the file id.
func (s *DriveStore) UploadFile(ctx context.Context, localPath, folderID string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	meta := &drive.File{
		Name:    filepath.Base(localPath),
		Parents: []string{folderID},
	}
	created, err := s.svc.Files.Create(meta).
		Media(f).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filepath.Base(localPath), err)
	}

	s.logger.Info("uploaded document",
		zap.String("file", filepath.Base(localPath)), zap.String("id", created.Id))
	return created.Id, nil
}

// FolderLink returns the browser URL of a folder.
func (s *DriveStore) FolderLink(folderID string) string {
	return "https://drive.google.com/drive/folders/" + folderID
}

// Verify checks that the configured root folder exists and is a folder.
func (s *DriveStore) Verify(ctx context.Context) error {
	f, err := s.svc.Files.Get(s.rootFolderID).
		Fields("id", "mimeType").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to open document folder: %w", err)
	}
	if f.MimeType != folderMimeType {
		return fmt.Errorf("document root %s is not a folder", s.rootFolderID)
	}
	return nil
}
