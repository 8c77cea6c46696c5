package cloudbeds

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"innflow/models"
	"innflow/services/engine"
	"innflow/services/redirect"
)

// CreateBooking books the stay. Hotels with redirect booking enabled
// short-circuit to a hosted-widget deep link with no API call made; a
// redirect config without a widget slug is a hard ConfigurationError,
// never a silent fallback to API mode. Everything else goes through the
// full reservation flow.
func (a *Adapter) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}

	if redirect.UsesRedirectBooking(a.cfg) {
		return a.redirectBooking(req)
	}
	return a.apiBooking(ctx, req)
}

func (a *Adapter) redirectBooking(req models.BookingRequest) (*models.BookingResponse, error) {
	bookingURL, err := redirect.BuildURL(a.cfg.Redirect, redirect.Params{
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Adults:    req.Adults,
		Children:  req.Children,
		Rooms:     req.Rooms,
		Currency:  a.cfg.Settings.Currency,
		Language:  a.cfg.Settings.Language,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("cloudbeds: redirect booking URL issued",
		zap.String("propertyID", a.cfg.Credentials.PropertyID))
	return &models.BookingResponse{
		Success:     true,
		Mode:        models.BookingModeRedirect,
		RedirectURL: bookingURL,
	}, nil
}

func (a *Adapter) apiBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	if req.Guest == nil {
		return nil, engine.NewBookingError(providerName, "guest details are required to create a booking", nil)
	}

	var created wireReservation
	if err := a.client.postForm(ctx, "/postReservation", a.reservationForm(req), &created); err != nil {
		return nil, engine.NewBookingError(providerName, "reservation create failed", err)
	}

	a.logger.Info("cloudbeds: reservation created",
		zap.String("reservationID", created.ReservationID))
	return &models.BookingResponse{
		Success:            true,
		Mode:               models.BookingModeAPI,
		BookingID:          created.ReservationID,
		ConfirmationNumber: created.ReservationID,
		TotalAmount:        created.GrandTotal,
		Currency:           a.currencyOrDefault(created.Currency),
	}, nil
}

// reservationForm serializes the request as repeated indexed
// array-of-objects form fields, one entry per room and per adult/child
// bucket. The provider's wire format requires this shape even for a
// single room.
func (a *Adapter) reservationForm(req models.BookingRequest) url.Values {
	roomTypeID := a.resolveRoomTypeID(req.RoomType)
	roomCount := req.Rooms
	if roomCount < 1 {
		roomCount = 1
	}

	form := url.Values{}
	form.Set("startDate", req.CheckIn)
	form.Set("endDate", req.CheckOut)
	form.Set("guestFirstName", req.Guest.FirstName)
	form.Set("guestLastName", req.Guest.LastName)
	form.Set("guestEmail", req.Guest.Email)
	if req.Guest.Phone != "" {
		form.Set("guestPhone", req.Guest.Phone)
	}
	if req.Guest.Country != "" {
		form.Set("guestCountry", req.Guest.Country)
	}
	if req.Guest.Address != "" {
		form.Set("guestAddress", req.Guest.Address)
	}
	if req.Guest.City != "" {
		form.Set("guestCity", req.Guest.City)
	}
	if req.Guest.Zip != "" {
		form.Set("guestZip", req.Guest.Zip)
	}
	if req.SpecialRequests != "" {
		form.Set("specialRequests", req.SpecialRequests)
	}
	if req.PromoCode != "" {
		form.Set("promoCode", req.PromoCode)
	}

	for i := 0; i < roomCount; i++ {
		prefix := fmt.Sprintf("rooms[%d]", i)
		form.Set(prefix+"[roomTypeID]", roomTypeID)
		if req.RatePlanID != "" {
			form.Set(prefix+"[roomRateID]", req.RatePlanID)
		}
		form.Set(prefix+"[quantity]", "1")

		form.Set(fmt.Sprintf("adults[%d][roomTypeID]", i), roomTypeID)
		form.Set(fmt.Sprintf("adults[%d][quantity]", i), strconv.Itoa(req.Adults))

		form.Set(fmt.Sprintf("children[%d][roomTypeID]", i), roomTypeID)
		form.Set(fmt.Sprintf("children[%d][quantity]", i), strconv.Itoa(req.Children))
	}
	return form
}

// GetBooking reads a reservation back from the provider.
func (a *Adapter) GetBooking(ctx context.Context, bookingID string) (*models.BookingDetails, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	if bookingID == "" {
		return nil, engine.NewBookingError(providerName, "booking ID is required", nil)
	}

	query := url.Values{}
	query.Set("reservationID", bookingID)

	var res wireReservation
	if err := a.client.get(ctx, "/getReservation", query, &res); err != nil {
		return nil, engine.NewBookingError(providerName, "reservation lookup failed", err)
	}
	return reservationDetails(res), nil
}

// CancelBooking cancels the reservation, recording the optional reason.
func (a *Adapter) CancelBooking(ctx context.Context, bookingID, reason string) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	if bookingID == "" {
		return engine.NewBookingError(providerName, "booking ID is required", nil)
	}

	form := url.Values{}
	form.Set("reservationID", bookingID)
	form.Set("status", "canceled")
	if reason != "" {
		form.Set("cancellationReason", reason)
	}

	if err := a.client.putForm(ctx, "/putReservation", form, nil); err != nil {
		return engine.NewBookingError(providerName, "reservation cancel failed", err)
	}
	a.logger.Info("cloudbeds: reservation canceled", zap.String("reservationID", bookingID))
	return nil
}

// ModifyBooking applies the non-zero changes to an existing reservation.
func (a *Adapter) ModifyBooking(ctx context.Context, bookingID string, changes models.BookingChanges) (*models.BookingDetails, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	if bookingID == "" {
		return nil, engine.NewBookingError(providerName, "booking ID is required", nil)
	}

	form := url.Values{}
	form.Set("reservationID", bookingID)
	if changes.CheckIn != "" {
		form.Set("startDate", changes.CheckIn)
	}
	if changes.CheckOut != "" {
		form.Set("endDate", changes.CheckOut)
	}
	if changes.Adults > 0 {
		form.Set("adults", strconv.Itoa(changes.Adults))
	}
	if changes.Children > 0 {
		form.Set("children", strconv.Itoa(changes.Children))
	}
	if changes.SpecialRequests != "" {
		form.Set("specialRequests", changes.SpecialRequests)
	}

	var res wireReservation
	if err := a.client.putForm(ctx, "/putReservation", form, &res); err != nil {
		return nil, engine.NewBookingError(providerName, "reservation update failed", err)
	}
	return reservationDetails(res), nil
}

// RecordPayment submits a payment against an existing reservation via the
// provider's form-urlencoded payment endpoint.
func (a *Adapter) RecordPayment(ctx context.Context, bookingID string, amount float64, method string) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	if bookingID == "" || amount <= 0 {
		return engine.NewBookingError(providerName, "payment needs a booking ID and a positive amount", nil)
	}

	form := url.Values{}
	form.Set("reservationID", bookingID)
	form.Set("amount", strconv.FormatFloat(amount, 'f', 2, 64))
	form.Set("type", method)

	if err := a.client.postForm(ctx, "/postPayment", form, nil); err != nil {
		return engine.NewBookingError(providerName, "payment submission failed", err)
	}
	a.logger.Info("cloudbeds: payment recorded",
		zap.String("reservationID", bookingID), zap.Float64("amount", amount))
	return nil
}

func reservationDetails(res wireReservation) *models.BookingDetails {
	return &models.BookingDetails{
		BookingID: res.ReservationID,
		Status:    res.Status,
		CheckIn:   res.StartDate,
		CheckOut:  res.EndDate,
		GuestName: res.GuestName,
		RoomType:  res.RoomTypeName,
		Total:     res.GrandTotal,
		Currency:  res.Currency,
	}
}
