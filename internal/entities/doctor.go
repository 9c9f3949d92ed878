package entities

type Doctor struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Available      bool   `json:"available"`
}

func (d Doctor) GetID() int64 { return d.ID }

func (d Doctor) WithID(id int64) Doctor {
	d.ID = id
	return d
}
