package firebase

import (
	"context"
	"sync"

	fb "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var (
	once    sync.Once
	app     *fb.App
	initErr error
)

// App returns the process-wide Firebase app handle, initializing it on
// first use. Subsequent calls return the same handle regardless of
// arguments, so cold-start re-entry is harmless.
func App(ctx context.Context, projectID, credentialsFile string) (*fb.App, error) {
	once.Do(func() {
		conf := &fb.Config{ProjectID: projectID}
		var opts []option.ClientOption
		if credentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(credentialsFile))
		}
		app, initErr = fb.NewApp(ctx, conf, opts...)
	})
	return app, initErr
}
