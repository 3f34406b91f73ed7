package simpletxmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

// Цикл повторов общий с txmanager и покрыт там на фейковом executor;
// здесь проверяем распознавание 40001 сквозь цепочки обёрток,
// которые реально порождают runOnce и слой хранилища.
func TestIsSerializationFailure(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}

	assert.True(t, isSerializationFailure(serialization))

	// Ошибка COMMIT в том виде, в котором её оборачивает runOnce
	assert.True(t, isSerializationFailure(fmt.Errorf("%w: %w", ErrCommitTx, serialization)))

	// Ошибка запроса, обёрнутая хранилищем и use case
	cause := fmt.Errorf("storage: Create - execute insert: %w", serialization)
	assert.True(t, isSerializationFailure(fmt.Errorf("internal error: %w", cause)))

	assert.False(t, isSerializationFailure(fmt.Errorf("%w: %w", ErrCommitTx, &pq.Error{Code: "23505"})))
	assert.False(t, isSerializationFailure(errors.New("plain error")))
}
