package media

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"yatube/internal/api/config"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SavePostImage 校验并保存帖子配图，返回相对于 media root 的路径。
// 过宽的图片会被等比缩小，文件名用 uuid 重新生成。
func SavePostImage(file *multipart.FileHeader) (string, error) {
	cfg := config.Cfg.Media

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "open uploaded image")
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", errors.Wrap(err, "decode uploaded image")
	}

	if cfg.MaxWidth > 0 && img.Bounds().Dx() > cfg.MaxWidth {
		img = imaging.Resize(img, cfg.MaxWidth, 0, imaging.Lanczos)
	}

	dir := filepath.Join(cfg.Root, "posts")
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create media dir")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	if err = imaging.Save(img, filepath.Join(dir, name)); err != nil {
		return "", errors.Wrap(err, "save image")
	}

	return filepath.ToSlash(filepath.Join("posts", name)), nil
}
