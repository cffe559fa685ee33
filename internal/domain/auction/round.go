package auction

import "time"

// Round is one timed bidding window inside a live auction.
type Round struct {
	Number          int `json:"roundNumber"`
	DurationSeconds int `json:"durationSeconds"`
}

func (r Round) Duration() time.Duration {
	return time.Duration(r.DurationSeconds) * time.Second
}

// RoundConfig is the ordered round layout of an auction.
type RoundConfig []Round

// EqualRounds builds count rounds numbered from 1, each lasting d.
func EqualRounds(count int, d time.Duration) RoundConfig {
	rounds := make(RoundConfig, 0, count)
	for i := 1; i <= count; i++ {
		rounds = append(rounds, Round{Number: i, DurationSeconds: int(d / time.Second)})
	}
	return rounds
}

func (rc RoundConfig) Clone() RoundConfig {
	if rc == nil {
		return RoundConfig{}
	}
	out := make(RoundConfig, len(rc))
	copy(out, rc)
	return out
}

func (rc RoundConfig) TotalDuration() time.Duration {
	var total time.Duration
	for _, r := range rc {
		total += r.Duration()
	}
	return total
}
