//go:build windows

package process

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/Microsoft/go-winio"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/Microsoft/lazywinapi/internal/log"
	"github.com/Microsoft/lazywinapi/internal/logfields"
	"github.com/Microsoft/lazywinapi/internal/oserror"
	"github.com/Microsoft/lazywinapi/internal/winapi"
)

// Access rights for [Open].
const (
	QueryLimitedInformation = windows.PROCESS_QUERY_LIMITED_INFORMATION
	QueryInformation        = windows.PROCESS_QUERY_INFORMATION
	VMRead                  = windows.PROCESS_VM_READ
	VMWrite                 = windows.PROCESS_VM_WRITE
	VMOperation             = windows.PROCESS_VM_OPERATION
	AllAccess               = winapi.PROCESS_ALL_ACCESS

	// MemoryAccess is what both [Process.ReadMemory] and [Process.WriteMemory] need.
	MemoryAccess = VMRead | VMWrite | VMOperation | QueryLimitedInformation
)

// SeDebugPrivilege allows opening any process regardless of its security descriptor.
const SeDebugPrivilege = "SeDebugPrivilege"

// maxPath is the longest path ExecutablePath accepts, in UTF-16 units.
const maxPath = windows.MAX_LONG_PATH

// Process is a handle to a Windows process.
type Process struct {
	handle windows.Handle
	pid    uint32
	owned  bool
}

// Self returns the current process. Its handle is a pseudo handle and
// needs no closing.
func Self() *Process {
	return &Process{handle: windows.CurrentProcess(), pid: SelfPID()}
}

// SelfPID returns the id of the current process.
func SelfPID() uint32 {
	return windows.GetCurrentProcessId()
}

// FromHandle wraps a process handle owned by the caller. Closing the returned
// Process does not close h.
func FromHandle(h windows.Handle) *Process {
	return &Process{handle: h}
}

// Open opens the process pid with the given access rights.
func Open(ctx context.Context, pid uint32, access uint32) (*Process, error) {
	h, err := windows.OpenProcess(access, false, pid)
	if err != nil {
		err = oserror.New(err, "OpenProcess")
		log.G(ctx).WithFields(logrus.Fields{
			logfields.ProcessID: pid,
			logfields.Access:    fmt.Sprintf("0x%x", access),
		}).WithError(err).Debug("could not open process")
		return nil, err
	}
	return &Process{handle: h, pid: pid, owned: true}, nil
}

// Handle returns the underlying process handle.
func (p *Process) Handle() windows.Handle {
	return p.handle
}

// PID returns the id of the process, looking it up from the handle if the
// process was not opened by id.
func (p *Process) PID() (uint32, error) {
	if p.pid != 0 {
		return p.pid, nil
	}
	pid, err := windows.GetProcessId(p.handle)
	if err != nil {
		return 0, oserror.New(err, "GetProcessId")
	}
	p.pid = pid
	return pid, nil
}

// Close closes the handle if it was opened by [Open].
func (p *Process) Close() error {
	if !p.owned || p.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(p.handle)
	p.handle = 0
	if err != nil {
		return oserror.New(err, "CloseHandle")
	}
	return nil
}

// ReadMemory reads len(buf) bytes of the process's memory starting at addr.
// The read either fills buf or fails.
func (p *Process) ReadMemory(addr uintptr, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if err := windows.ReadProcessMemory(p.handle, addr, &buf[0], uintptr(len(buf)), nil); err != nil {
		return oserror.New(err, "ReadProcessMemory")
	}
	return nil
}

// WriteMemory writes data into the process's memory starting at addr.
func (p *Process) WriteMemory(addr uintptr, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := windows.WriteProcessMemory(p.handle, addr, &data[0], uintptr(len(data)), nil); err != nil {
		return oserror.New(err, "WriteProcessMemory")
	}
	return nil
}

// ExecutablePathTo writes the full Win32 path of the process's executable
// into dst and returns it. It fails if dst is too small to hold the path.
//
// The handle needs [QueryInformation] or [QueryLimitedInformation] access.
func (p *Process) ExecutablePathTo(dst []uint16) (string, error) {
	if len(dst) == 0 {
		return "", oserror.New(windows.ERROR_INSUFFICIENT_BUFFER, "QueryFullProcessImageNameW")
	}
	n := uint32(len(dst))
	if err := windows.QueryFullProcessImageName(p.handle, 0, &dst[0], &n); err != nil {
		return "", oserror.New(err, "QueryFullProcessImageNameW")
	}
	return windows.UTF16ToString(dst[:n]), nil
}

// ExecutablePath returns the full Win32 path of the process's executable,
// growing its buffer up to the longest path Windows supports.
func (p *Process) ExecutablePath() (string, error) {
	b, err := winapi.GrowLStr(windows.MAX_PATH, maxPath, func(s *uint16, l *uint32) error {
		return windows.QueryFullProcessImageName(p.handle, 0, s, l)
	})
	if err != nil {
		return "", oserror.New(err, "QueryFullProcessImageNameW")
	}
	return windows.UTF16ToString(b), nil
}

// DevicePath returns the path of the process's executable in NT device form,
// such as \Device\HarddiskVolume3\Windows\notepad.exe.
func (p *Process) DevicePath() (string, error) {
	b, err := winapi.GrowLStr(windows.MAX_PATH, maxPath, func(s *uint16, l *uint32) error {
		n, err := winapi.GetProcessImageFileName(p.handle, s, *l)
		if err != nil {
			return err
		}
		*l = n
		return nil
	})
	if err != nil {
		return "", oserror.New(err, "GetProcessImageFileNameW")
	}
	return windows.UTF16ToString(b), nil
}

// WindowPID returns the id of the process that created window, or 0 if
// window is not a valid window handle.
func WindowPID(window windows.HWND) uint32 {
	var pid uint32
	_, _ = windows.GetWindowThreadProcessId(window, &pid)
	return pid
}

// WindowTID returns the id of the thread that created window, or 0 if
// window is not a valid window handle.
func WindowTID(window windows.HWND) uint32 {
	tid, _ := windows.GetWindowThreadProcessId(window, nil)
	return tid
}

// EnableDebugPrivilege enables [SeDebugPrivilege] for the current process, so
// that [Open] succeeds on processes owned by other users. The process token
// must hold the privilege, which normally requires an elevated administrator.
func EnableDebugPrivilege(ctx context.Context) error {
	if err := winio.EnableProcessPrivileges([]string{SeDebugPrivilege}); err != nil {
		log.G(ctx).WithField(logfields.Privilege, SeDebugPrivilege).WithError(err).Debug("could not enable privilege")
		return err
	}
	return nil
}

// ReadValue reads a value of type T from the process's memory at addr.
func ReadValue[T any](p *Process, addr uintptr) (T, error) {
	var v T
	b := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	if err := p.ReadMemory(addr, b); err != nil {
		return v, err
	}
	return v, nil
}

// WriteValue writes v into the process's memory at addr.
func WriteValue[T any](p *Process, addr uintptr, v T) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	return p.WriteMemory(addr, b)
}
