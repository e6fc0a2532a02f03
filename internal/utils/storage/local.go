package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

type localDisk struct {
	baseDir string
	baseURL string
}

// NewLocalDisk stores uploads under baseDir and serves them from
// baseURL/uploads/. Used when no S3 bucket is configured.
func NewLocalDisk(baseDir, baseURL string) ObjectStorage {
	return &localDisk{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (l *localDisk) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	contentType := contentTypeOf(file)
	if err := checkAllowed(contentType, allowedTypes); err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, extensionFor(contentType, file.Filename))
	if err := l.write(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (l *localDisk) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	contentType := contentTypeOf(file)
	if err := checkAllowed(contentType, allowedTypes); err != nil {
		return "", err
	}
	if err := l.write(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (l *localDisk) write(objectKey string, file *multipart.FileHeader) error {
	path := filepath.Join(l.baseDir, filepath.FromSlash(objectKey))
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func (l *localDisk) DeleteFile(objectKey string) error {
	return os.Remove(filepath.Join(l.baseDir, filepath.FromSlash(objectKey)))
}

func (l *localDisk) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("%s/uploads/%s", l.baseURL, objectKey)
}

func (l *localDisk) GetObjectKeyFromLink(link string) string {
	prefix := l.baseURL + "/uploads/"
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
