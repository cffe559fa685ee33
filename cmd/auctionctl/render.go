package main

import (
	"fmt"
	"io"

	resdto "auction-scheduler/internal/handler/dto/response"

	"github.com/olekukonko/tablewriter"
)

func renderSlots(w io.Writer, slots []*resdto.SlotResponse) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Time", "Status", "Name", "Rounds", "External ID")

	for _, s := range slots {
		if err := table.Append(
			fmt.Sprintf("%d", s.AuctionNumber),
			s.TimeSlot,
			s.Status,
			s.Name,
			fmt.Sprintf("%d", s.RoundCount),
			s.ExternalID.String(),
		); err != nil {
			return err
		}
	}

	return table.Render()
}

func nonNil(slots ...*resdto.SlotResponse) []*resdto.SlotResponse {
	out := make([]*resdto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
