package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
)

func seedCmd() *cobra.Command {
	var (
		roomType string
		from     string
		to       string
		capacity int
		price    float64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Set capacity (and optionally price) for every date in [from, to]",
		RunE: func(cmd *cobra.Command, args []string) error {
			roomTypeID, err := uuid.Parse(roomType)
			if err != nil {
				return fmt.Errorf("invalid --room-type: %w", err)
			}

			dateFrom, err := domain.ParseDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}

			dateTo, err := domain.ParseDate(to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}

			req := services.SetAvailabilityRangeRequest{
				RoomTypeID: roomTypeID,
				DateFrom:   dateFrom,
				DateTo:     dateTo,
				Capacity:   capacity,
			}

			if cmd.Flags().Changed("price") {
				req.Price = &price
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.inventory.SetAvailabilityRange(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %d, updated %d inventory days\n", result.Created, result.Updated)
			return nil
		},
	}

	cmd.Flags().StringVar(&roomType, "room-type", "", "room type id")
	cmd.Flags().StringVar(&from, "from", "", "first date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last date (inclusive), YYYY-MM-DD")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "rooms available per night")
	cmd.Flags().Float64Var(&price, "price", 0, "price per night; omit to keep the stored price")

	_ = cmd.MarkFlagRequired("room-type")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("capacity")

	return cmd
}
