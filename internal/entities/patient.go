package entities

type Patient struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

func (p Patient) GetID() int64 { return p.ID }

func (p Patient) WithID(id int64) Patient {
	p.ID = id
	return p
}
