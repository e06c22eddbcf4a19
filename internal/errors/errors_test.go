package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "formatted error", appErr.Error())
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedFormatted)
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))
	assert.Nil(t, WrapKind(nil, RenderFailed, "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())

	assert.True(t, Is(wrappedErr, origErr))
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("directory cannot be read", "/sd/games/", DirectoryUnreadable, nil)
	assert.NotNil(t, fileErr)
	assert.Equal(t, "directory cannot be read: /sd/games/", fileErr.Error())
	assert.Equal(t, "/sd/games/", fileErr.Path())
	assert.Equal(t, DirectoryUnreadable, fileErr.Kind())

	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("directory cannot be read", "/sd/games/", DirectoryUnreadable, origErr)
	assert.Equal(t, "directory cannot be read: /sd/games/: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	invalid := NewFileError("invalid path", "", InvalidPath, nil)
	assert.True(t, IsDirectoryUnreadable(fileErr))
	assert.False(t, IsDirectoryUnreadable(invalid))
	assert.False(t, IsDirectoryUnreadable(New("other")))

	var fe *FileError
	assert.True(t, As(fileErr, &fe))
	assert.Equal(t, "/sd/games/", fe.Path())
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "display.mode", InvalidConfig, nil)
	assert.NotNil(t, configErr)
	assert.Equal(t, "invalid value: display.mode", configErr.Error())
	assert.Equal(t, "display.mode", configErr.Param())
	assert.Equal(t, InvalidConfig, configErr.Kind())

	origErr := fmt.Errorf("unknown mode")
	configErr = NewConfigError("invalid value", "display.mode", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: display.mode: unknown mode", configErr.Error())
	assert.Equal(t, origErr, Unwrap(configErr))

	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(New("some other error")))
}

func TestSelectionError(t *testing.T) {
	selErr := NewSelectionError("invalid selection", "ftp://elsewhere/x", nil)
	assert.Equal(t, `invalid selection: "ftp://elsewhere/x"`, selErr.Error())
	assert.Equal(t, "ftp://elsewhere/x", selErr.Token())
	assert.Equal(t, InvalidSelection, selErr.Kind())
	assert.True(t, IsInvalidSelection(selErr))
	assert.True(t, IsInvalidSelection(Wrap(selErr, "step")))
	assert.False(t, IsInvalidSelection(NewFileError("directory cannot be read", "/", DirectoryUnreadable, nil)))
}

func TestKindOf(t *testing.T) {
	base := errors.New("boom")
	assert.Equal(t, Unknown, KindOf(nil))
	assert.Equal(t, Unknown, KindOf(base))
	assert.Equal(t, RenderFailed, KindOf(WrapKind(base, RenderFailed, "render")))
	assert.Equal(t, DirectoryUnreadable, KindOf(Wrap(NewFileError("x", "/", DirectoryUnreadable, base), "outer")))
	assert.Equal(t, InvalidSelection, KindOf(fmt.Errorf("step: %w", NewSelectionError("invalid selection", "x", nil))))
	assert.Equal(t, "display_failed", DisplayFailed.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}

func TestErrorChains(t *testing.T) {
	baseErr := errors.New("base error")
	fileErr := NewFileError("file error", "/sd/", DirectoryUnreadable, baseErr)
	configErr := NewConfigError("config error", "browser.starting_folder", InvalidConfig, fileErr)

	assert.Equal(t, "config error: browser.starting_folder: file error: /sd/: base error", configErr.Error())

	assert.True(t, Is(configErr, baseErr))
	assert.True(t, Is(configErr, fileErr))

	var fe *FileError
	assert.True(t, As(configErr, &fe))
	assert.Equal(t, "/sd/", fe.Path())

	assert.True(t, IsDirectoryUnreadable(configErr))
	assert.True(t, IsInvalidConfig(configErr))
}
