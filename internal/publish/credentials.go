package publish

import (
	"net"
	"path"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidCredentials is returned before any connection is attempted.
var ErrInvalidCredentials = errors.New("invalid ftp credentials")

var validate = validator.New()

// Credentials describe the remote FTP destination.
type Credentials struct {
	Host               string `json:"host" binding:"required" validate:"required"`
	Port               string `json:"port" validate:"omitempty,numeric"`
	Username           string `json:"username" binding:"required" validate:"required"`
	Password           string `json:"password" binding:"required" validate:"required"`
	RootFolder         string `json:"rootFolder"`
	PublishOnlyChanges bool   `json:"publishOnlyChanges"`
}

// Normalize fills in the default port and root folder.
func (c Credentials) Normalize() Credentials {
	c.Host = strings.TrimSpace(c.Host)
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "21"
	}
	c.RootFolder = strings.TrimSpace(c.RootFolder)
	if c.RootFolder == "" {
		c.RootFolder = "/"
	}
	return c
}

// Validate checks required fields and the port range.
func (c Credentials) Validate() error {
	c = c.Normalize()
	if err := validate.Struct(c); err != nil {
		return errors.WithMessage(ErrInvalidCredentials, err.Error())
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return errors.WithMessagef(ErrInvalidCredentials, "port %q out of range", c.Port)
	}
	return nil
}

// Addr returns host:port.
func (c Credentials) Addr() string {
	c = c.Normalize()
	return net.JoinHostPort(c.Host, c.Port)
}

// Target identifies the destination directory, used to key publish history.
func (c Credentials) Target() string {
	c = c.Normalize()
	return "ftp://" + c.Username + "@" + c.Addr() + path.Clean("/"+c.RootFolder)
}
