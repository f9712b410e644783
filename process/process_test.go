//go:build windows

package process

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/windows"
)

func TestExecutablePath(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Fatal(err)
	}
	name := strings.ToLower(filepath.Base(exe))

	path, err := Self().ExecutablePath()
	if err != nil {
		t.Fatalf("failed to retrieve exe path: %v", err)
	}
	if !strings.Contains(strings.ToLower(path), name) {
		t.Fatalf("couldn't locate own exe name %q in %q", name, path)
	}

	buf := make([]uint16, 500)
	bounded, err := Self().ExecutablePathTo(buf)
	if err != nil {
		t.Fatalf("failed to retrieve exe path: %v", err)
	}
	if bounded != path {
		t.Fatalf("expected %q, got %q", path, bounded)
	}
}

func TestExecutablePathBufferTooSmall(t *testing.T) {
	_, err := Self().ExecutablePathTo(make([]uint16, 3))
	if !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
		t.Fatalf("expected ERROR_INSUFFICIENT_BUFFER, got %v", err)
	}
}

func TestDevicePath(t *testing.T) {
	path, err := Self().DevicePath()
	if err != nil {
		t.Fatalf("failed to retrieve device path: %v", err)
	}
	if !strings.HasPrefix(path, `\Device\`) {
		t.Fatalf("expected an NT device path, got %q", path)
	}
}

func TestSelfMemoryRoundTrip(t *testing.T) {
	src := []byte("For my waifu!")
	dst := make([]byte, len(src))
	p := Self()

	if err := p.WriteMemory(uintptr(unsafe.Pointer(&dst[0])), src); err != nil {
		t.Fatalf("WriteMemory failed: %v", err)
	}
	got := make([]byte, len(src))
	if err := p.ReadMemory(uintptr(unsafe.Pointer(&dst[0])), got); err != nil {
		t.Fatalf("ReadMemory failed: %v", err)
	}
	if diff := cmp.Diff(src, got); diff != "" {
		t.Fatalf("unexpected memory (-want +got):\n%s", diff)
	}
}

func TestOpenedMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := Open(ctx, SelfPID(), MemoryAccess)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p.Close()

	var target uint64 = 0x1122334455667788
	addr := uintptr(unsafe.Pointer(&target))
	v, err := ReadValue[uint64](p, addr)
	if err != nil {
		t.Fatalf("ReadValue failed: %v", err)
	}
	if v != target {
		t.Fatalf("expected 0x%x, got 0x%x", target, v)
	}

	if err := WriteValue[uint64](p, addr, 42); err != nil {
		t.Fatalf("WriteValue failed: %v", err)
	}
	if v, err := ReadValue[uint64](p, addr); err != nil || v != 42 {
		t.Fatalf("expected 42, got %d, %v", v, err)
	}

	pid, err := p.PID()
	if err != nil || pid != SelfPID() {
		t.Fatalf("expected pid %d, got %d, %v", SelfPID(), pid, err)
	}
}

func TestReadInvalidAddress(t *testing.T) {
	buf := make([]byte, 8)
	if err := Self().ReadMemory(0, buf); err == nil {
		t.Fatal("expected reading address 0 to fail")
	}
}

func TestFromHandlePID(t *testing.T) {
	p := FromHandle(windows.CurrentProcess())
	pid, err := p.PID()
	if err != nil {
		t.Fatalf("PID failed: %v", err)
	}
	if pid != SelfPID() {
		t.Fatalf("expected %d, got %d", SelfPID(), pid)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("closing a borrowed handle should be a no-op: %v", err)
	}
}

func TestWindowOwnerInvalid(t *testing.T) {
	if pid := WindowPID(0); pid != 0 {
		t.Fatalf("expected pid 0, got %d", pid)
	}
	if tid := WindowTID(0); tid != 0 {
		t.Fatalf("expected tid 0, got %d", tid)
	}
}

func TestOpenNonexistent(t *testing.T) {
	// pids are multiples of 4
	if _, err := Open(context.Background(), 3, QueryLimitedInformation); err == nil {
		t.Fatal("expected opening pid 3 to fail")
	}
}
