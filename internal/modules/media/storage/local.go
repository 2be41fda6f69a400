package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"art-atlas-server/internal/utils"
)

type LocalStorage struct {
	root      string
	urlPrefix string
}

func NewLocalStorage(root, urlPrefix string) *LocalStorage {
	if root == "" {
		root = "uploads"
	}
	if urlPrefix == "" {
		urlPrefix = "/uploads/"
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &LocalStorage{root: root, urlPrefix: urlPrefix}
}

func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) Save(_ context.Context, name string, body io.Reader, _ int64, _ string) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return err
	}
	dst, err := utils.SecureJoin(s.root, name)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, body); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}

// Delete 文件不存在时视为成功
func (s *LocalStorage) Delete(_ context.Context, name string) error {
	target, err := utils.SecureJoin(s.root, name)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStorage) URL(name string) string {
	return s.urlPrefix + filepath.ToSlash(name)
}
