package deck

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTableShape 表格数据为空或行长度不一致
	ErrInvalidTableShape = errors.New("invalid table shape")
	// ErrRender means the document could not honour a layout or styling request.
	ErrRender = errors.New("render failed")
	// ErrIO covers serialization and file write failures.
	ErrIO = errors.New("write failed")
	// ErrClosed is returned by a Builder used after Save or WriteTo.
	ErrClosed = errors.New("builder already saved")
	// ErrInvalidDeck reports a malformed deck file.
	ErrInvalidDeck = errors.New("invalid deck")
	// ErrInvalidStyle reports an unusable StyleConfig.
	ErrInvalidStyle = errors.New("invalid style")
)

// SlideError 统一的幻灯片错误类型
type SlideError struct {
	Index int       // 0-based position in the deck
	Kind  SlideKind // 幻灯片类型
	Err   error     // 原始错误
}

// Error 返回格式化的错误信息：[slide N kind] error message
func (e *SlideError) Error() string {
	return fmt.Sprintf("[slide %d %s] %v", e.Index+1, e.Kind, e.Err)
}

// Unwrap 返回原始错误，支持 errors.Is/errors.As 链式查询
func (e *SlideError) Unwrap() error {
	return e.Err
}

// WrapSlideError attaches slide context to err. A nil err stays nil.
func WrapSlideError(index int, kind SlideKind, err error) error {
	if err == nil {
		return nil
	}
	return &SlideError{Index: index, Kind: kind, Err: err}
}

func renderErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrRender, fmt.Sprintf(format, args...))
}

// asRender tags err as ErrRender unless it already carries a deck sentinel.
func asRender(err error) error {
	if err == nil || errors.Is(err, ErrRender) || errors.Is(err, ErrInvalidTableShape) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrRender, err)
}
