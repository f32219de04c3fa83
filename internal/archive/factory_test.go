package archive

import (
	"context"
	"testing"
)

func TestOpenDefaultsToFilesystem(t *testing.T) {
	t.Setenv("CORDCORE_ARCHIVE_DRIVER", "")
	t.Setenv("CORDCORE_ARCHIVE_FS_ROOT", t.TempDir())
	store, err := Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if store.Driver() != DriverFilesystem {
		t.Fatalf("Driver = %q, want %q", store.Driver(), DriverFilesystem)
	}
}

func TestOpenMemoryDriver(t *testing.T) {
	t.Setenv("CORDCORE_ARCHIVE_DRIVER", "memory")
	store, err := Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if store.Driver() != DriverMemory {
		t.Fatalf("Driver = %q, want %q", store.Driver(), DriverMemory)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Setenv("CORDCORE_ARCHIVE_DRIVER", "tape")
	if _, err := Open(context.Background()); err == nil {
		t.Fatal("unknown driver accepted")
	}
}
