package interfaces

import (
	"context"
	"io"
)

// IImageStorage uploads catalog images to the CDN and returns the public URL.

type IImageStorage interface {
	Upload(ctx context.Context, file io.Reader, folder string) (url string, err error)
}
