package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAppointment(t *testing.T) *Appointment {
	t.Helper()
	appointment, err := NewAppointment(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		time.Date(2026, 9, 15, 14, 0, 0, 0, time.Local),
		30, "", nil,
	)
	require.NoError(t, err)
	return appointment
}

func TestNewAppointment(t *testing.T) {
	t.Run("agendamento válido", func(t *testing.T) {
		appointment := buildAppointment(t)
		assert.Equal(t, AppointmentScheduled, appointment.Status)
		assert.Equal(t, time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local), appointment.EndsAt())
	})

	t.Run("validações", func(t *testing.T) {
		now := time.Now()

		_, err := NewAppointment(uuid.Nil, uuid.New(), uuid.New(), uuid.New(), now, 30, "", nil)
		assert.ErrorIs(t, err, ErrTenantIDRequired)

		_, err = NewAppointment(uuid.New(), uuid.Nil, uuid.New(), uuid.New(), now, 30, "", nil)
		assert.ErrorIs(t, err, ErrClientIDRequired)

		_, err = NewAppointment(uuid.New(), uuid.New(), uuid.Nil, uuid.New(), now, 30, "", nil)
		assert.ErrorIs(t, err, ErrBarberIDRequired)

		_, err = NewAppointment(uuid.New(), uuid.New(), uuid.New(), uuid.Nil, now, 30, "", nil)
		assert.ErrorIs(t, err, ErrServiceIDRequired)

		_, err = NewAppointment(uuid.New(), uuid.New(), uuid.New(), uuid.New(), time.Time{}, 30, "", nil)
		assert.ErrorIs(t, err, ErrInvalidScheduledAt)

		_, err = NewAppointment(uuid.New(), uuid.New(), uuid.New(), uuid.New(), now, 0, "", nil)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestAppointmentTransitions(t *testing.T) {
	t.Run("fluxo completo", func(t *testing.T) {
		appointment := buildAppointment(t)

		require.NoError(t, appointment.TransitionTo(AppointmentConfirmed))
		require.NoError(t, appointment.TransitionTo(AppointmentInProgress))
		require.NoError(t, appointment.TransitionTo(AppointmentCompleted))
		assert.Equal(t, AppointmentCompleted, appointment.Status)
	})

	t.Run("scheduled pode ir direto para in_progress", func(t *testing.T) {
		appointment := buildAppointment(t)
		require.NoError(t, appointment.TransitionTo(AppointmentInProgress))
	})

	t.Run("estados terminais não transicionam", func(t *testing.T) {
		for _, terminal := range []AppointmentStatus{AppointmentCompleted, AppointmentCancelled, AppointmentNoShow} {
			appointment := buildAppointment(t)
			appointment.Status = terminal

			for _, target := range []AppointmentStatus{AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress, AppointmentCompleted} {
				if target == terminal {
					continue
				}
				assert.ErrorIs(t, appointment.TransitionTo(target), ErrInvalidTransition,
					"%s -> %s deveria ser bloqueada", terminal, target)
			}
		}
	})

	t.Run("transições inválidas", func(t *testing.T) {
		appointment := buildAppointment(t)

		// scheduled não pula direto para completed
		assert.ErrorIs(t, appointment.TransitionTo(AppointmentCompleted), ErrInvalidTransition)

		// status desconhecido
		assert.ErrorIs(t, appointment.TransitionTo(AppointmentStatus("rescheduled")), ErrInvalidStatus)

		// in_progress não admite no_show (cliente já está na cadeira)
		require.NoError(t, appointment.TransitionTo(AppointmentInProgress))
		assert.ErrorIs(t, appointment.TransitionTo(AppointmentNoShow), ErrInvalidTransition)
	})
}
