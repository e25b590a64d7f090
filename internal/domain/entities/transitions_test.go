package entities

import (
	"errors"
	"testing"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{"pendente to aprovado", StatusPendente, StatusAprovado, true},
		{"pendente to autorizado", StatusPendente, StatusAutorizado, true},
		{"pendente to reembolsado", StatusPendente, StatusReembolsado, false},
		{"autorizado to aprovado", StatusAutorizado, StatusAprovado, true},
		{"autorizado to rejeitado", StatusAutorizado, StatusRejeitado, false},
		{"processando to aprovado", StatusProcessando, StatusAprovado, true},
		{"aprovado to reembolsado", StatusAprovado, StatusReembolsado, true},
		{"aprovado to contestado", StatusAprovado, StatusContestado, true},
		{"aprovado to pendente", StatusAprovado, StatusPendente, false},
		{"aprovado to rejeitado", StatusAprovado, StatusRejeitado, false},
		{"rejeitado has no edges", StatusRejeitado, StatusAprovado, false},
		{"cancelado has no edges", StatusCancelado, StatusPendente, false},
		{"reembolsado has no edges", StatusReembolsado, StatusContestado, false},
		{"desconhecido recovers to aprovado", StatusDesconhecido, StatusAprovado, true},
		{"desconhecido recovers to pendente", StatusDesconhecido, StatusPendente, true},
		{"same status is not an edge", StatusPendente, StatusPendente, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
				t.Fatalf("CanTransitionTo(%s, %s) = %t, want %t", tc.from, tc.to, got, tc.allowed)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminals := []PaymentStatus{StatusRejeitado, StatusCancelado, StatusReembolsado, StatusContestado}
	for _, s := range terminals {
		if !s.IsTerminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	open := []PaymentStatus{StatusPendente, StatusAutorizado, StatusProcessando, StatusAprovado, StatusDesconhecido}
	for _, s := range open {
		if s.IsTerminal() {
			t.Fatalf("expected %s not to be terminal", s)
		}
	}
}

func TestApplyTransition(t *testing.T) {
	t.Run("legal edge moves forward", func(t *testing.T) {
		next, err := ApplyTransition(StatusPendente, StatusAprovado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != StatusAprovado {
			t.Fatalf("expected aprovado, got %s", next)
		}
	})

	t.Run("replay of the current status is stale", func(t *testing.T) {
		next, err := ApplyTransition(StatusAprovado, StatusAprovado)
		if !errors.Is(err, ErrStaleTransition) {
			t.Fatalf("expected ErrStaleTransition, got %v", err)
		}
		if next != StatusAprovado {
			t.Fatalf("current status must be kept, got %s", next)
		}
	})

	t.Run("regression is stale", func(t *testing.T) {
		next, err := ApplyTransition(StatusAprovado, StatusPendente)
		if !errors.Is(err, ErrStaleTransition) {
			t.Fatalf("expected ErrStaleTransition, got %v", err)
		}
		if next != StatusAprovado {
			t.Fatalf("current status must be kept, got %s", next)
		}
	})

	t.Run("out of order deliveries never regress", func(t *testing.T) {
		// Deliveries arriving in scrambled order: only legal forward edges
		// apply, everything else is discarded.
		status := StatusPendente
		for _, proposed := range []PaymentStatus{StatusAprovado, StatusProcessando, StatusPendente, StatusAprovado, StatusRejeitado} {
			status, _ = ApplyTransition(status, proposed)
		}
		if status != StatusAprovado {
			t.Fatalf("expected aprovado after scrambled sequence, got %s", status)
		}
	})
}
