package dto

// BookTourRequest is the payload for booking a tour
type BookTourRequest struct {
	IDParticipante int64 `json:"idParticipante" binding:"required"`
	IDRecorrido    int64 `json:"idRecorrido" binding:"required"`
}

// MoveRequest is the payload for moving an avatar to a zone
type MoveRequest struct {
	IDParticipante int64 `json:"idParticipante" binding:"required"`
	IDZona         int64 `json:"idZona" binding:"required"`
}
