// Package pagination encodes the keyset cursor handed out as nextToken.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
)

const createdAtFormat = time.RFC3339Nano

// Cursor is the position of the last row of a page in (date, created_at, id) order.
type Cursor struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
}

// CursorFor builds the cursor pointing at txn.
func CursorFor(txn domain.Transaction) Cursor {
	return Cursor{Date: txn.Date, CreatedAt: txn.CreatedAt, ID: txn.TransactionID}
}

// Encode renders the cursor as an opaque token safe to put in a query string.
func (c Cursor) Encode() string {
	raw := strings.Join([]string{
		c.Date.Format(domain.DateLayout),
		c.CreatedAt.UTC().Format(createdAtFormat),
		c.ID,
	}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by Cursor.Encode.
func DecodeCursor(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token (base64 decode): %w", err)
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 3 {
		return Cursor{}, errors.New("invalid pagination token (expected 3 fields)")
	}

	date, err := time.Parse(domain.DateLayout, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token (date): %w", err)
	}
	createdAt, err := time.Parse(createdAtFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token (created_at): %w", err)
	}
	if parts[2] == "" {
		return Cursor{}, errors.New("invalid pagination token (empty id)")
	}
	return Cursor{Date: date, CreatedAt: createdAt, ID: parts[2]}, nil
}
