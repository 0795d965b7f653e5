// Package publish pushes rendered site files to a remote host over FTP.
package publish

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/pkg/errors"
)

// IndexFile is the document every publish writes.
const IndexFile = "index.html"

// File is one document to upload, relative to the root folder.
type File struct {
	Name    string
	Content []byte
}

// Receipt reports which files an upload stored and where they landed.
type Receipt struct {
	Files []string
	// InLoginDir is set when the root folder could not be entered and the
	// files were written to the login directory instead.
	InLoginDir bool
}

// Conn is the subset of an FTP session the publisher needs.
type Conn interface {
	Login(user, password string) error
	ChangeDir(path string) error
	Stor(path string, r io.Reader) error
	Quit() error
}

// Dialer opens FTP sessions.
type Dialer interface {
	Dial(ctx context.Context, addr string) (Conn, error)
}

// FTPDialer dials real servers with jlaffaye/ftp.
type FTPDialer struct {
	Timeout time.Duration
}

// Dial connects to addr.
func (d FTPDialer) Dial(ctx context.Context, addr string) (Conn, error) {
	opts := []ftp.DialOption{ftp.DialWithContext(ctx)}
	if d.Timeout > 0 {
		opts = append(opts, ftp.DialWithTimeout(d.Timeout))
	}
	conn, err := ftp.Dial(addr, opts...)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Publisher uploads files in a single session per call.
type Publisher struct {
	dialer Dialer
}

// NewPublisher returns a Publisher using dialer.
func NewPublisher(dialer Dialer) *Publisher {
	if dialer == nil {
		dialer = FTPDialer{Timeout: 30 * time.Second}
	}
	return &Publisher{dialer: dialer}
}

// Upload validates creds, connects, logs in, switches to the root folder and
// stores every file, overwriting existing ones. A failed directory change is
// logged and the files go to the login directory instead. Any other failure
// aborts the call; nothing is retried.
func (p *Publisher) Upload(ctx context.Context, creds Credentials, files []File) (Receipt, error) {
	if err := creds.Validate(); err != nil {
		return Receipt{}, err
	}
	creds = creds.Normalize()

	conn, err := p.dialer.Dial(ctx, creds.Addr())
	if err != nil {
		return Receipt{}, errors.Wrapf(err, "connect to %s", creds.Addr())
	}
	defer func() {
		if quitErr := conn.Quit(); quitErr != nil {
			slog.Debug("ftp quit failed", "host", creds.Host, "err", quitErr)
		}
	}()

	if err := conn.Login(creds.Username, creds.Password); err != nil {
		return Receipt{}, errors.Wrapf(err, "login to %s", creds.Host)
	}

	receipt := Receipt{Files: make([]string, 0, len(files))}
	if creds.RootFolder != "/" {
		if err := conn.ChangeDir(creds.RootFolder); err != nil {
			slog.Warn("could not change to root folder", "host", creds.Host, "root", creds.RootFolder, "err", err)
			receipt.InLoginDir = true
		}
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return Receipt{}, err
		}
		if err := conn.Stor(file.Name, bytes.NewReader(file.Content)); err != nil {
			return Receipt{}, errors.Wrapf(err, "store %s", file.Name)
		}
		receipt.Files = append(receipt.Files, file.Name)
	}

	slog.Info("uploaded site to ftp server", "host", creds.Host, "files", len(receipt.Files), "login_dir", receipt.InLoginDir)
	return receipt, nil
}
