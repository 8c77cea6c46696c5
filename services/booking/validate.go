package booking

import (
	"fmt"
	"regexp"
	"time"

	"innflow/models"
)

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateBookingRequest checks the request before it reaches a provider
// and returns a list of human-readable problems rather than an error.
// An empty list means the request is bookable.
func ValidateBookingRequest(req models.BookingRequest, now time.Time) []string {
	var problems []string

	checkIn, checkInErr := time.Parse(dateLayout, req.CheckIn)
	checkOut, checkOutErr := time.Parse(dateLayout, req.CheckOut)

	if req.CheckIn == "" {
		problems = append(problems, "check-in date is required")
	} else if checkInErr != nil {
		problems = append(problems, fmt.Sprintf("check-in date %q must be YYYY-MM-DD", req.CheckIn))
	}
	if req.CheckOut == "" {
		problems = append(problems, "check-out date is required")
	} else if checkOutErr != nil {
		problems = append(problems, fmt.Sprintf("check-out date %q must be YYYY-MM-DD", req.CheckOut))
	}

	if checkInErr == nil && req.CheckIn != "" {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if checkIn.Before(today) {
			problems = append(problems, "check-in date cannot be in the past")
		}
	}
	if checkInErr == nil && checkOutErr == nil && req.CheckIn != "" && req.CheckOut != "" {
		if !checkOut.After(checkIn) {
			problems = append(problems, "check-out date must be after check-in date")
		}
	}

	if req.Adults < 1 {
		problems = append(problems, "at least one adult is required")
	}

	if req.Guest == nil {
		problems = append(problems, "guest details are required")
		return problems
	}
	if req.Guest.FirstName == "" {
		problems = append(problems, "guest first name is required")
	}
	if req.Guest.LastName == "" {
		problems = append(problems, "guest last name is required")
	}
	if req.Guest.Email == "" {
		problems = append(problems, "guest email is required")
	} else if !emailPattern.MatchString(req.Guest.Email) {
		problems = append(problems, fmt.Sprintf("guest email %q is not a valid address", req.Guest.Email))
	}

	return problems
}
