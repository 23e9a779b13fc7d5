package console

import (
	"context"
	"strings"

	"github.com/diones-souza/test-snaty/internal/tripform"
)

// MessageDeleted is reported when every delete succeeded.
const MessageDeleted = "Registro(s) excluído(s) com sucesso"

// DeleteFunc removes one record.
type DeleteFunc func(ctx context.Context, id int64) error

// DeleteAll removes ids one after the other. A failure does not stop the
// remaining deletes; the failures' messages are joined into one error
// notification.
func DeleteAll(ctx context.Context, ids []int64, del DeleteFunc) (string, tripform.Status) {
	var failures []string
	for _, id := range ids {
		if err := del(ctx, id); err != nil {
			failures = append(failures, tripform.ErrorMessage(err))
		}
	}
	if len(failures) > 0 {
		return strings.Join(failures, ", "), tripform.StatusError
	}
	return MessageDeleted, tripform.StatusSuccess
}
