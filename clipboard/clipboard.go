package clipboard

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/Microsoft/lazywinapi/internal/clipsys"
	"github.com/Microsoft/lazywinapi/internal/log"
	"github.com/Microsoft/lazywinapi/internal/logfields"
	"github.com/Microsoft/lazywinapi/internal/oserror"
)

var (
	// ErrClosed is returned by every method of a [Session] after [Session.Close].
	ErrClosed = errors.New("clipboard session is closed")
	// ErrFormatUnavailable is returned when the clipboard holds no data of a format.
	ErrFormatUnavailable = errors.New("clipboard format not available")
	// ErrInvalidString is returned for strings that cannot be NUL terminated.
	ErrInvalidString = errors.New("string contains a NUL character")
)

// sys is swapped out in tests.
var sys clipsys.API = clipsys.Native

// Session is an open clipboard. It is owned by the OS thread that opened it.
type Session struct {
	ctx    context.Context
	api    clipsys.API
	closed bool
}

// Open opens the clipboard for the calling goroutine, which stays locked to
// its OS thread until [Session.Close]. Open fails while any thread, including
// the calling one, has the clipboard open.
func Open(ctx context.Context) (*Session, error) {
	runtime.LockOSThread()
	if err := sys.OpenClipboard(); err != nil {
		runtime.UnlockOSThread()
		err = oserror.New(err, "OpenClipboard")
		log.G(ctx).WithError(err).Debug("could not open clipboard")
		return nil, err
	}
	log.G(ctx).Trace("clipboard opened")
	return &Session{ctx: ctx, api: sys}, nil
}

// Close closes the clipboard so that other threads may open it. The session
// is unusable afterwards, even if closing fails.
func (s *Session) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	defer runtime.UnlockOSThread()

	if err := s.api.CloseClipboard(); err != nil {
		return s.fail(err, "CloseClipboard")
	}
	log.G(s.ctx).Trace("clipboard closed")
	return nil
}

// Empty removes all data from the clipboard.
func (s *Session) Empty() error {
	if s.closed {
		return ErrClosed
	}
	if err := s.api.EmptyClipboard(); err != nil {
		return s.fail(err, "EmptyClipboard")
	}
	return nil
}

// Size returns the size in bytes of the clipboard data of format f, or 0 if
// there is none.
func (s *Session) Size(f Format) int {
	if s.closed {
		return 0
	}
	h, err := s.api.GetClipboardData(uint32(f))
	if err != nil || h == 0 {
		return 0
	}
	return s.api.GlobalSize(h)
}

// Get copies the clipboard data of format f into dst and returns the number
// of bytes copied. If the data is larger than dst it is silently truncated to
// len(dst) bytes. On failure Get returns 0 and an error.
func (s *Session) Get(f Format, dst []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	var n int
	err := s.withData(f, func(mem []byte) {
		n = copy(dst, mem)
	})
	if err != nil {
		return 0, err
	}
	log.G(s.ctx).WithFields(logrus.Fields{
		logfields.Format: uint32(f),
		logfields.Bytes:  n,
	}).Trace("clipboard get")
	return n, nil
}

// Bytes returns a copy of all the clipboard data of format f.
func (s *Session) Bytes(f Format) ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	var b []byte
	err := s.withData(f, func(mem []byte) {
		b = make([]byte, len(mem))
		copy(b, mem)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// withData calls fn with a locked view of the clipboard data of format f.
func (s *Session) withData(f Format, fn func([]byte)) error {
	h, err := s.api.GetClipboardData(uint32(f))
	if err != nil || h == 0 {
		if err == nil {
			return fmt.Errorf("%w: 0x%04X", ErrFormatUnavailable, uint32(f))
		}
		return fmt.Errorf("%w: 0x%04X: %w", ErrFormatUnavailable, uint32(f), s.fail(err, "GetClipboardData"))
	}

	mem, err := s.api.GlobalLock(h)
	if err != nil {
		return s.fail(err, "GlobalLock")
	}
	defer func() {
		_ = s.api.GlobalUnlock(h)
	}()

	fn(mem)
	return nil
}

// Set replaces the contents of the clipboard with data as format f.
//
// The data is copied into a newly allocated global memory block that the
// clipboard takes ownership of. If the clipboard refuses it, the block is
// freed and the error returned.
func (s *Session) Set(f Format, data []byte) error {
	if s.closed {
		return ErrClosed
	}
	entry := log.G(s.ctx).WithFields(logrus.Fields{
		logfields.Format: uint32(f),
		logfields.Size:   len(data),
	})

	h, err := s.api.GlobalAlloc(len(data))
	if err != nil {
		return s.fail(err, "GlobalAlloc")
	}

	if len(data) > 0 {
		mem, err := s.api.GlobalLock(h)
		if err != nil {
			_ = s.api.GlobalFree(h)
			return s.fail(err, "GlobalLock")
		}
		copy(mem, data)
		_ = s.api.GlobalUnlock(h)
	}

	// SetClipboardData reports its own failure if emptying did not work.
	_ = s.api.EmptyClipboard()

	if err := s.api.SetClipboardData(uint32(f), h); err != nil {
		if ferr := s.api.GlobalFree(h); ferr != nil {
			entry.WithError(ferr).Debug("could not free clipboard block")
		}
		return s.fail(err, "SetClipboardData")
	}
	entry.WithField(logfields.Bytes, data).Trace("clipboard set")
	return nil
}

// SetString sets text as [CF_TEXT], including its terminating NUL byte.
// The bytes of text are stored as given.
func (s *Session) SetString(text string) error {
	b, err := encodeString(text)
	if err != nil {
		return err
	}
	return s.Set(CF_TEXT, b)
}

// SetWideString sets text as UTF-16 [CF_UNICODETEXT], including its
// terminating NUL.
func (s *Session) SetWideString(text string) error {
	b, err := encodeWideString(text)
	if err != nil {
		return err
	}
	return s.Set(CF_UNICODETEXT, b)
}

// NextFormat returns the clipboard format that follows after in the
// clipboard's enumeration order. Passing 0 starts the enumeration; 0 is
// returned once all formats have been listed.
func (s *Session) NextFormat(after Format) (Format, error) {
	if s.closed {
		return 0, ErrClosed
	}
	next, err := s.api.EnumClipboardFormats(uint32(after))
	if err != nil {
		return 0, s.fail(err, "EnumClipboardFormats")
	}
	return Format(next), nil
}

// Formats lists every format currently on the clipboard.
func (s *Session) Formats() ([]Format, error) {
	var fs []Format
	for f := Format(0); ; {
		next, err := s.NextFormat(f)
		if err != nil {
			return nil, err
		}
		if next == 0 {
			return fs, nil
		}
		fs = append(fs, next)
		f = next
	}
}

// CountFormats returns the number of formats currently on the clipboard.
func (s *Session) CountFormats() (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return s.api.CountClipboardFormats(), nil
}

func (s *Session) fail(err error, op string) error {
	err = oserror.New(err, op)
	log.G(s.ctx).WithError(err).WithField(logfields.ErrorCode, oserror.Win32FromError(err)).Debug("clipboard call failed")
	return err
}

// IsFormatAvailable reports whether the clipboard holds data of format f.
// The clipboard does not need to be open.
func IsFormatAvailable(f Format) bool {
	return sys.IsClipboardFormatAvailable(uint32(f))
}

// RegisterFormat registers a new clipboard format called name. If a format
// with that name already exists its identifier is returned instead.
func RegisterFormat(name string) (Format, error) {
	if name == "" {
		return 0, fmt.Errorf("empty clipboard format name")
	}
	f, err := sys.RegisterClipboardFormat(name)
	if err != nil {
		return 0, oserror.New(err, "RegisterClipboardFormatW")
	}
	return Format(f), nil
}

// SequenceNumber returns the clipboard's sequence number, which changes every
// time its contents do. It is 0 without WINSTA_ACCESSCLIPBOARD access.
func SequenceNumber() uint32 {
	return sys.GetClipboardSequenceNumber()
}
