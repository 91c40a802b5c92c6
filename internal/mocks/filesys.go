package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/lc/configopen/internal/filesys"
)

var _ filesys.Opener = (*MockOsFS)(nil)

// MockOsFS is a testify/mock implementation of filesys.Opener.
type MockOsFS struct {
	mock.Mock
}

// Open mocks the Open method.
func (m *MockOsFS) Open(p string) (*os.File, error) {
	args := m.Called(p)
	// Need to handle potential nil pointer return
	var file *os.File
	if args.Get(0) != nil {
		file = args.Get(0).(*os.File)
	}
	return file, args.Error(1)
}
