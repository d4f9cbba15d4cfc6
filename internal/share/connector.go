// Package share locates and mounts the remote SMB share through the
// desktop's GVFS layer. It is a thin wrapper around the `gio` mount
// helper; the caller decides when to retry.
package share

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"shareview/internal/config"
	"shareview/internal/errors"
	"shareview/internal/log"
)

// Connector resolves the local mount point of one share and can ask the
// OS mount helper to establish it. Both operations are idempotent.
type Connector struct {
	addr  string
	share string

	// ProbeRoot is the per-user GVFS mount registry directory.
	// Overridable for tests.
	ProbeRoot string
	// Helper is the mount helper binary.
	Helper string
	// Timeout bounds one mount attempt.
	Timeout time.Duration
	// Settle is how long to wait after the helper returns; GVFS finishes
	// the mount asynchronously.
	Settle time.Duration
}

// NewConnector creates a Connector for the configured share.
func NewConnector(cfg *config.Config) *Connector {
	uid := os.Getuid()
	if uid < 0 {
		uid = 1000
	}
	return &Connector{
		addr:      cfg.Server.Address,
		share:     cfg.Server.Share,
		ProbeRoot: fmt.Sprintf("/run/user/%d/gvfs", uid),
		Helper:    "gio",
		Timeout:   time.Duration(cfg.Settings.MountTimeoutSeconds) * time.Second,
		Settle:    time.Second,
	}
}

// URI returns the smb:// URI the helper is invoked with.
func (c *Connector) URI() string {
	return fmt.Sprintf("smb://%s/%s", c.addr, c.share)
}

// MountPath returns the best guess of where the share is (or would be)
// mounted. It probes the GVFS registry for an entry naming this server
// and share; when none matches it synthesizes the canonical GVFS path.
func (c *Connector) MountPath() string {
	serverTag := "server=" + c.addr
	shareTag := "share=" + c.share

	if entries, err := os.ReadDir(c.ProbeRoot); err == nil {
		for _, entry := range entries {
			name := entry.Name()
			if strings.Contains(name, serverTag) && strings.Contains(name, shareTag) {
				return filepath.Join(c.ProbeRoot, name)
			}
		}
	}

	return filepath.Join(c.ProbeRoot, fmt.Sprintf("smb-share:%s,%s", serverTag, shareTag))
}

// Mounted reports whether the resolved mount path is currently listable.
func (c *Connector) Mounted() bool {
	_, err := os.ReadDir(c.MountPath())
	return err == nil
}

// Connect invokes the mount helper for the share URI and waits for the
// mount to settle. Success means the helper ran to completion within the
// timeout; like the desktop's own mounting, an already-mounted share
// reports success. The caller should re-resolve MountPath afterwards.
func (c *Connector) Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	uri := c.URI()
	log.LogWithFields(log.F("uri", uri), log.F("helper", c.Helper)).Info("Mounting share")

	cmd := exec.CommandContext(ctx, c.Helper, "mount", uri)
	cmd.Stdout = nil
	cmd.Stderr = nil

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return errors.Newf(errors.MountTimeout, "mount of %s timed out after %s", uri, c.Timeout)
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return errors.Newf(errors.MountHelperMissing,
				"mount helper %q not found; connect to %s manually from the file manager", c.Helper, uri)
		}
		// A non-zero exit usually means the share is already mounted or
		// the desktop showed its own credentials prompt; treat it like
		// the helper finishing and let the mount-path probe decide.
		log.Debugf("mount helper exited with: %v", err)
	}

	// Mount completion is asynchronous
	select {
	case <-time.After(c.Settle):
	case <-ctx.Done():
	}

	return nil
}
