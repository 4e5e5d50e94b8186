// Package drive implements the remote blob collaborator on Google Drive.
// Containers are Drive folders, blobs are files inside them, and WhoAmI maps
// to the About endpoint.
package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/edsontomaz/gestao-financeira/internal/storage"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Client wraps the Drive v3 service.
type Client struct {
	svc *drive.Service
}

// NewClient creates a Drive client. When credentialsFile is empty,
// Application Default Credentials are used.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(drive.DriveFileScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

var _ storage.RemoteStorage = (*Client)(nil)

// EnsureContainer finds or creates the named folder and returns its id.
func (c *Client) EnsureContainer(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQuery(name), folderMimeType)
	list, err := c.svc.Files.List().
		Q(query).
		Spaces("drive").
		Fields("files(id)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", mapError(err)
	}
	if len(list.Files) > 0 {
		return list.Files[0].Id, nil
	}

	folder, err := c.svc.Files.Create(&drive.File{Name: name, MimeType: folderMimeType}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", mapError(err)
	}
	return folder.Id, nil
}

// WriteBlob uploads content to the named file inside the folder, replacing
// its media when the file already exists.
func (c *Client) WriteBlob(ctx context.Context, containerID, name, content string) error {
	fileID, err := c.findFile(ctx, containerID, name)
	if err != nil && !errors.Is(err, storage.ErrBlobNotFound) {
		return err
	}

	if fileID != "" {
		_, err = c.svc.Files.Update(fileID, &drive.File{}).
			Media(strings.NewReader(content)).
			Context(ctx).
			Do()
	} else {
		_, err = c.svc.Files.Create(&drive.File{Name: name, Parents: []string{containerID}}).
			Media(strings.NewReader(content)).
			Context(ctx).
			Do()
	}
	if err != nil {
		return mapError(err)
	}
	return nil
}

// ReadBlob downloads the named file's content.
func (c *Client) ReadBlob(ctx context.Context, containerID, name string) (string, error) {
	fileID, err := c.findFile(ctx, containerID, name)
	if err != nil {
		return "", err
	}

	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return "", mapError(err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read blob body: %w", err)
	}
	return string(content), nil
}

// WhoAmI returns the connected Google account.
func (c *Client) WhoAmI(ctx context.Context) (*storage.Account, error) {
	about, err := c.svc.About.Get().Fields("user").Context(ctx).Do()
	if err != nil {
		return nil, mapError(err)
	}
	return &storage.Account{
		Name:  about.User.DisplayName,
		Email: about.User.EmailAddress,
	}, nil
}

// findFile locates a file by name inside a folder.
func (c *Client) findFile(ctx context.Context, containerID, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false",
		escapeQuery(name), containerID)
	list, err := c.svc.Files.List().
		Q(query).
		Spaces("drive").
		Fields("files(id)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", mapError(err)
	}
	if len(list.Files) == 0 {
		return "", storage.ErrBlobNotFound
	}
	return list.Files[0].Id, nil
}

// mapError collapses Drive failures into the two outcomes the reconciler
// distinguishes: not-found and everything else.
func mapError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 404 {
		return storage.ErrBlobNotFound
	}
	return err
}

// escapeQuery escapes single quotes for Drive query strings.
func escapeQuery(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
