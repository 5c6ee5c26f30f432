package handlers

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// Export writes a static YAML inventory to path, or to out when path is
// empty or "-".
func Export(ctx context.Context, out io.Writer, path string) error {
	inv, err := load(ctx)
	if err != nil {
		return err
	}

	data, err := inv.YAML()
	if err != nil {
		return err
	}

	if path == "" || path == "-" {
		_, err := out.Write(data)
		return errors.Wrap(err, "write output")
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return errors.Wrapf(err, "expand %s", path)
	}
	path = expanded

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	log.Printf("[INFO] inventory written to %s", path)
	return nil
}
