package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeDestroyOrphan = "video:destroy_orphan"

type DestroyOrphanPayload struct {
	PublicID string `json:"public_id"`
}

// NewDestroyOrphanTask creates an Asynq task for destroying a stored object
// that never got a database record.
func NewDestroyOrphanTask(publicID string) (*asynq.Task, error) {
	p := DestroyOrphanPayload{PublicID: publicID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal destroy-orphan payload: %w", err)
	}
	return asynq.NewTask(TypeDestroyOrphan, data), nil
}

// ParseDestroyOrphanPayload parses the task payload to DestroyOrphanPayload.
func ParseDestroyOrphanPayload(t *asynq.Task) (DestroyOrphanPayload, error) {
	var p DestroyOrphanPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return DestroyOrphanPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
