package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/travel-blog/internal/model"
	"github.com/sakif/travel-blog/internal/repository"
)

var _ repository.MessageRepository = (*MessageDB)(nil)

// MessageDB stores messages with their free-form body encoded as JSON.
type MessageDB struct {
	conn *sql.DB
}

func (m *MessageDB) Create(ctx context.Context, message *model.Message) error {
	body := message.Body
	if body == nil {
		body = map[string]any{}
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("sqlite: encoding message body: %w", err)
	}

	message.ID = xid.New().String()
	message.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	_, err = m.conn.ExecContext(ctx,
		`INSERT INTO messages (id, body, created_at) VALUES (?, ?, ?)`,
		message.ID,
		string(encoded),
		message.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting message: %w", err)
	}

	return nil
}

// List orders by created_at, then rowid so messages created within the same
// millisecond keep their insertion order.
func (m *MessageDB) List(ctx context.Context) ([]model.Message, error) {
	rows, err := m.conn.QueryContext(ctx,
		`SELECT id, body, created_at FROM messages ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing messages: %w", err)
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var (
			msg       model.Message
			body      string
			createdAt int64
		)
		if err := rows.Scan(&msg.ID, &body, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning message: %w", err)
		}
		if err := json.Unmarshal([]byte(body), &msg.Body); err != nil {
			return nil, fmt.Errorf("sqlite: decoding message %s: %w", msg.ID, err)
		}
		msg.CreatedAt = time.UnixMilli(createdAt).UTC()
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating messages: %w", err)
	}

	return messages, nil
}

// Delete is a no-op for ids that are malformed or absent.
func (m *MessageDB) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := m.conn.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id); err != nil {
		return fmt.Errorf("sqlite: deleting message %s: %w", id, err)
	}
	return nil
}
