package cloudbeds

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"innflow/models"
	"innflow/services/engine"
)

// Stay-restriction placeholders. Cloudbeds does not return min/max stay
// on the availability call, so every entry carries this range.
const (
	placeholderMinStay = 1
	placeholderMaxStay = 30
)

// CheckAvailability queries the available room types for the stay and
// keeps only entries with a strictly positive available count.
func (a *Adapter) CheckAvailability(ctx context.Context, query models.RateQuery) ([]models.RoomAvailability, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}

	var pages []wirePropertyAvailability
	if err := a.client.get(ctx, "/getAvailableRoomTypes", stayQuery(query), &pages); err != nil {
		return nil, engine.NewAvailabilityError(providerName, "available room types lookup failed", err)
	}

	var out []models.RoomAvailability
	for _, page := range pages {
		for _, rt := range page.RoomTypes {
			if rt.RoomsAvailable <= 0 {
				continue
			}
			out = append(out, models.RoomAvailability{
				RoomID:         rt.RoomTypeID,
				RoomType:       rt.RoomTypeName,
				AvailableRooms: rt.RoomsAvailable,
				Price:          rt.RoomRate,
				Currency:       a.currencyOrDefault(rt.Currency),
				MaxOccupancy:   rt.MaxGuests,
				Restrictions: models.StayRestrictions{
					MinStay: placeholderMinStay,
					MaxStay: placeholderMaxStay,
				},
			})
		}
	}

	a.logger.Debug("cloudbeds: availability checked",
		zap.String("checkIn", query.CheckIn),
		zap.String("checkOut", query.CheckOut),
		zap.Int("roomTypes", len(out)))
	return out, nil
}

// GetRates returns the flat room/rate-plan price list for the stay,
// mapped field by field.
func (a *Adapter) GetRates(ctx context.Context, query models.RateQuery) ([]models.RoomRate, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}

	var rates []wireRate
	if err := a.client.get(ctx, "/getRate", stayQuery(query), &rates); err != nil {
		return nil, engine.NewAvailabilityError(providerName, "rate lookup failed", err)
	}

	out := make([]models.RoomRate, 0, len(rates))
	for _, r := range rates {
		out = append(out, models.RoomRate{
			RoomID:     r.RoomTypeID,
			RoomType:   r.RoomTypeName,
			RatePlanID: r.RatePlanID,
			RateName:   r.RatePlanName,
			TotalPrice: r.TotalRate,
			Currency:   a.currencyOrDefault(r.Currency),
		})
	}
	return out, nil
}

func (a *Adapter) currencyOrDefault(currency string) string {
	if currency != "" {
		return currency
	}
	return a.cfg.Settings.Currency
}

func stayQuery(query models.RateQuery) url.Values {
	values := url.Values{}
	values.Set("startDate", query.CheckIn)
	values.Set("endDate", query.CheckOut)
	values.Set("adults", strconv.Itoa(query.Adults))
	if query.Children > 0 {
		values.Set("children", strconv.Itoa(query.Children))
	}
	if query.Rooms > 0 {
		values.Set("rooms", strconv.Itoa(query.Rooms))
	}
	return values
}
