//go:build !gcp

package persist

import (
	"context"
	"fmt"
)

func newGCSBlobStore(context.Context, string) (BlobStore, error) {
	return nil, fmt.Errorf("GCS storage is not enabled in this build (use -tags gcp)")
}
