package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListOccupiedTimesEmptyLedger(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListOccupiedTimes(repo)

	horarios, err := uc.Execute(context.Background(), "2026-09-10", "Carlos")
	require.NoError(t, err)

	// lista vazia, nunca nil nem erro
	assert.NotNil(t, horarios)
	assert.Empty(t, horarios)
}

func TestListOccupiedTimesFiltersByDateAndBarber(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateAppointment(repo, &fakeSender{}, zap.NewNop())

	for _, tc := range []struct{ data, horario, barbeiro string }{
		{"2026-09-10", "14:30", "Carlos"},
		{"2026-09-10", "15:30", "Carlos"},
		{"2026-09-10", "14:30", "Rafael"},
		{"2026-09-11", "14:30", "Carlos"},
	} {
		in := validInput()
		in.Data = tc.data
		in.Horario = tc.horario
		in.Barbeiro = tc.barbeiro
		_, err := create.Execute(context.Background(), in)
		require.NoError(t, err)
	}

	uc := NewListOccupiedTimes(repo)
	horarios, err := uc.Execute(context.Background(), "2026-09-10", "Carlos")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"14:30", "15:30"}, horarios)
}

func TestListOccupiedTimesRepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("connection reset")
	uc := NewListOccupiedTimes(repo)

	horarios, err := uc.Execute(context.Background(), "2026-09-10", "Carlos")
	require.Error(t, err)
	assert.Nil(t, horarios)
}
