package transfer

import (
	"math"
	"testing"

	"github.com/riskibarqy/football-career/internal/domain/player"
)

func contractPlayer(age int) player.Player {
	return player.Player{
		ID:        "p-7",
		ShortName: "J. Okafor",
		Age:       player.Int(age),
		Overall:   player.Int(77),
		Wage:      player.Int64(100_000),
	}
}

func TestMinContractLength(t *testing.T) {
	rules := DefaultRules()
	cases := map[int]int{18: 3, 24: 3, 25: 2, 29: 2, 30: 1, 36: 1}
	for age, want := range cases {
		if got := MinContractLength(rules, age); got != want {
			t.Fatalf("age %d: got %d, want %d", age, got, want)
		}
	}
}

func TestEvaluateContract_Scoring(t *testing.T) {
	tests := []struct {
		name       string
		offer      ContractOffer
		rating     int
		wantStatus Status
		wantScore  int
		wantWage   int64
		wantLength int
	}{
		{
			name:       "generous offer",
			offer:      ContractOffer{LengthYears: 4, WeeklyWage: 110_000, SigningBonus: 1_000_000},
			rating:     75,
			wantStatus: StatusAccepted,
			wantScore:  7,
		},
		{
			name:       "lukewarm offer",
			offer:      ContractOffer{LengthYears: 3, WeeklyWage: 95_000},
			rating:     80,
			wantStatus: StatusCounter,
			wantScore:  2,
			wantWage:   108_000,
			wantLength: 3,
		},
		{
			name:       "counter keeps longer offered length",
			offer:      ContractOffer{LengthYears: 5, WeeklyWage: 50_000, SigningBonus: 1_000_000},
			rating:     70,
			wantStatus: StatusCounter,
			wantScore:  2,
			wantWage:   108_000,
			wantLength: 5,
		},
		{
			name:       "insulting offer",
			offer:      ContractOffer{LengthYears: 1, WeeklyWage: 50_000},
			rating:     90,
			wantStatus: StatusRejected,
			wantScore:  -2,
		},
		{
			name:       "short deal without prestige",
			offer:      ContractOffer{LengthYears: 2, WeeklyWage: 100_000, SigningBonus: 500_000},
			rating:     84,
			wantStatus: StatusCounter,
			wantScore:  2,
			wantWage:   108_000,
			wantLength: 3,
		},
		{
			name:       "prestige tips the balance",
			offer:      ContractOffer{LengthYears: 2, WeeklyWage: 100_000, SigningBonus: 500_000},
			rating:     85,
			wantStatus: StatusAccepted,
			wantScore:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ContractInput{
				Player:         contractPlayer(24),
				Offer:          tt.offer,
				Fee:            2_000_000,
				WageBudget:     500_000,
				TransferBudget: 10_000_000,
				ClubRating:     tt.rating,
			}
			out := EvaluateContract(DefaultRules(), in)
			if out.Status != tt.wantStatus {
				t.Fatalf("status %s, want %s", out.Status, tt.wantStatus)
			}
			if out.Score != tt.wantScore {
				t.Fatalf("score %d, want %d", out.Score, tt.wantScore)
			}
			if out.CounterWage != tt.wantWage || out.CounterLength != tt.wantLength {
				t.Fatalf("counter terms %d/%d, want %d/%d", out.CounterWage, out.CounterLength, tt.wantWage, tt.wantLength)
			}
			if again := EvaluateContract(DefaultRules(), in); again != out {
				t.Fatalf("evaluation not deterministic: %+v vs %+v", out, again)
			}
		})
	}
}

func TestEvaluateContract_BudgetGates(t *testing.T) {
	rules := DefaultRules()
	base := ContractInput{
		Player:         contractPlayer(28),
		Offer:          ContractOffer{LengthYears: 3, WeeklyWage: 105_000, SigningBonus: 1_000_000},
		Fee:            9_000_000,
		WageBudget:     100_000,
		TransferBudget: 10_000_000,
		ClubRating:     80,
	}

	if out := EvaluateContract(rules, base); out.Status == StatusWageBudget || out.Status == StatusTransferBudget {
		t.Fatalf("offer on the exact limits should pass the gates, got %s", out.Status)
	}

	overWage := base
	overWage.Offer.WeeklyWage = 105_001
	if out := EvaluateContract(rules, overWage); out.Status != StatusWageBudget || out.Success {
		t.Fatalf("expected wage_budget, got %s", out.Status)
	}

	overBudget := base
	overBudget.Offer.SigningBonus = 1_000_001
	if out := EvaluateContract(rules, overBudget); out.Status != StatusTransferBudget {
		t.Fatalf("expected transfer_budget, got %s", out.Status)
	}
}

func TestEvaluateContract_TransferGateDoesNotWrap(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name  string
		fee   int64
		bonus int64
	}{
		{name: "fee and bonus sum past int64", fee: 1 << 62, bonus: 1 << 62},
		{name: "fee inside budget, bonus near max", fee: 1_000_000, bonus: math.MaxInt64 - 10},
		{name: "fee alone over budget", fee: math.MaxInt64, bonus: 0},
	}

	for _, tt := range tests {
		in := ContractInput{
			Player:         contractPlayer(28),
			Offer:          ContractOffer{LengthYears: 4, WeeklyWage: 110_000, SigningBonus: tt.bonus},
			Fee:            tt.fee,
			WageBudget:     200_000,
			TransferBudget: 50_000_000,
			ClubRating:     80,
		}
		out := EvaluateContract(rules, in)
		if out.Status != StatusTransferBudget || out.Success {
			t.Fatalf("%s: expected transfer_budget, got %s", tt.name, out.Status)
		}
	}
}
