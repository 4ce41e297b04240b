package list_bookings

import (
	"strconv"
	"time"

	"github.com/m04kA/BRM-RentalService/internal/domain"
	"github.com/m04kA/BRM-RentalService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из query-параметров
func ToServiceRequest(userID int64, boatIDStr, companyIDStr, statusStr, dateFromStr, dateToStr, includeCancelledStr string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{UserID: userID}

	if boatIDStr != "" {
		boatID, err := strconv.ParseInt(boatIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.BoatID = &boatID
	}

	if companyIDStr != "" {
		companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CompanyID = &companyID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if dateFromStr != "" {
		dateFrom, err := time.Parse(domain.DateFormat, dateFromStr)
		if err != nil {
			return nil, err
		}
		req.DateFrom = &dateFrom
	}

	if dateToStr != "" {
		dateTo, err := time.Parse(domain.DateFormat, dateToStr)
		if err != nil {
			return nil, err
		}
		req.DateTo = &dateTo
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
