package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctor_WithID(t *testing.T) {
	d := Doctor{ID: 3, Name: "A", Specialization: "Cardiology", Available: true}

	moved := d.WithID(9)

	assert.Equal(t, int64(9), moved.GetID())
	assert.Equal(t, int64(3), d.GetID(), "receiver must not change")
	assert.Equal(t, d.Name, moved.Name)
	assert.Equal(t, d.Specialization, moved.Specialization)
	assert.Equal(t, d.Available, moved.Available)
}

func TestPatient_WithID(t *testing.T) {
	p := Patient{Name: "B", Age: 40, Gender: "female"}

	moved := p.WithID(1)

	assert.Equal(t, int64(1), moved.GetID())
	assert.Equal(t, Patient{ID: 1, Name: "B", Age: 40, Gender: "female"}, moved)
}

func TestDoctor_JSONFieldNames(t *testing.T) {
	var d Doctor
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"name":"A","specialization":"Neurology","available":true}`), &d))

	assert.Equal(t, Doctor{ID: 5, Name: "A", Specialization: "Neurology", Available: true}, d)
}

func TestPatient_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Patient{ID: 2, Name: "B", Age: 30, Gender: "male"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":2,"name":"B","age":30,"gender":"male"}`, string(data))
}
