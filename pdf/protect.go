package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ProtectPDF encrypts the source with AES-256 using password as the user
// password.
func ProtectPDF(ctx context.Context, rs io.ReadSeeker, w io.Writer, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	conf := model.NewAESConfiguration(password, password+OwnerPasswordSuffix, 256)
	if err := api.Encrypt(rs, w, conf); err != nil {
		return fmt.Errorf("pdfcpu encrypt failed: %w", err)
	}
	return nil
}

// UnlockPDF removes password protection from the source. The password is
// tried first as written by ProtectPDF and then as the owner password.
func UnlockPDF(ctx context.Context, rs io.ReadSeeker, w io.Writer, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	var lastErr error
	for _, ownerPW := range []string{password + OwnerPasswordSuffix, password} {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := rewind(rs); err != nil {
			return err
		}

		conf := newConfig()
		conf.UserPW = password
		conf.OwnerPW = ownerPW

		var buf bytes.Buffer
		if lastErr = api.Decrypt(rs, &buf, conf); lastErr == nil {
			_, err := w.Write(buf.Bytes())
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrUnlockFailed, lastErr)
}
