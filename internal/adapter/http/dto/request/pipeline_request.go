package request

import "talentbruecke/internal/domain/entities"

// PipelineMoveRequest is the payload behind a drag-and-drop move on the
// employer's board.
type PipelineMoveRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r PipelineMoveRequest) ResolveStatus() entities.RelationStatus {
	return entities.RelationStatus(r.Status)
}
