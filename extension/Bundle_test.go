package extension

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestBundledAlwaysOverwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, EmbeddedBundleName)

	if err := os.WriteFile(target, []byte("stale"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ext := &Extension{Node: "node", Locator: &BundledLocator{Dir: dir}}
	path, err := ext.BundlePath()

	if err != nil {
		t.Fatalf("BundlePath: %v", err)
	}

	if path != target {
		t.Errorf("path %s expected %s", path, target)
	}

	data, err := os.ReadFile(target)

	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if !bytes.Equal(data, serverBundle) {
		t.Errorf("target should hold the embedded bundle")
	}

	// with the cache now set, a resolve must still rewrite the file
	if err = os.WriteFile(target, []byte("stale"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err = ext.BundlePath(); err != nil {
		t.Fatalf("BundlePath: %v", err)
	}

	data, err = os.ReadFile(target)

	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if !bytes.Equal(data, serverBundle) {
		t.Errorf("cached resolve should still overwrite the target")
	}
}

func TestBundledWriteError(t *testing.T) {
	ext := &Extension{Node: "node", Locator: &BundledLocator{Dir: filepath.Join(t.TempDir(), "missing")}}
	_, err := ext.BundlePath()

	if err == nil {
		t.Errorf("should return error for unwritable dir")
	}
}
