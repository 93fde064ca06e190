package handlers

import (
	"github.com/pslmedia/backoffice/internal/app/service/auth"
	"github.com/pslmedia/backoffice/internal/app/service/billing"
	"github.com/pslmedia/backoffice/internal/app/service/subscriber"
	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespLogin wraps the login result in the standard envelope.
type RespLogin struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    auth.LoginResult         `json:"data"`
}

// RespLogout wraps the session length in the standard envelope.
type RespLogout struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    map[string]int64         `json:"data"`
}

// RespSubscriber wraps a subscriber projection in the standard envelope.
type RespSubscriber struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    SubscriberItem           `json:"data"`
}

// RespListSubscribers wraps the paginated listing in the standard envelope.
type RespListSubscribers struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    ListSubscribersResponse  `json:"data"`
}

// RespEmployee wraps an employee in the standard envelope.
type RespEmployee struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Employee          `json:"data"`
}

// RespEmployees wraps an employee listing in the standard envelope.
type RespEmployees struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.Employee        `json:"data"`
}

// RespAddress wraps an employee address in the standard envelope.
type RespAddress struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.EmployeeAddress   `json:"data"`
}

// RespAddresses wraps an address listing in the standard envelope.
type RespAddresses struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.EmployeeAddress `json:"data"`
}

// RespDesignation wraps a designation in the standard envelope.
type RespDesignation struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Designation       `json:"data"`
}

// RespDesignations wraps a designation listing in the standard envelope.
type RespDesignations struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.Designation     `json:"data"`
}

// RespPackage wraps a catalog entry in the standard envelope.
type RespPackage struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    PackageItem              `json:"data"`
}

// RespPackages wraps a catalog listing in the standard envelope.
type RespPackages struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []PackageItem            `json:"data"`
}

// RespAssignment wraps a package assignment in the standard envelope.
type RespAssignment struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.SubPackage        `json:"data"`
}

// RespAssignments wraps an assignment listing in the standard envelope.
type RespAssignments struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.SubPackage      `json:"data"`
}

// RespSweep wraps a trial sweep summary in the standard envelope.
type RespSweep struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    subscriber.SweepResult   `json:"data"`
}

// RespNote wraps a note in the standard envelope.
type RespNote struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Note              `json:"data"`
}

// RespNotes wraps a note listing in the standard envelope.
type RespNotes struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.Note            `json:"data"`
}

// RespPayment wraps a payment in the standard envelope.
type RespPayment struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Payment           `json:"data"`
}

// RespPayments wraps the payment listing in the standard envelope.
type RespPayments struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []billing.PaymentItem    `json:"data"`
}

// RespRevenue wraps a materialized revenue row in the standard envelope.
type RespRevenue struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Revenue           `json:"data"`
}

// RespDashboard wraps the dashboard aggregate in the standard envelope.
type RespDashboard struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    billing.DashboardStats   `json:"data"`
}

// RespRevenueChart wraps the monthly revenue series in the standard envelope.
type RespRevenueChart struct {
	Code    response.APIResponseCode   `json:"code"`
	Message string                     `json:"message"`
	Data    []billing.RevenueChartItem `json:"data"`
}

// RespMessage wraps an internal message in the standard envelope.
type RespMessage struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.UserMessage       `json:"data"`
}

// RespMessages wraps a message listing in the standard envelope.
type RespMessages struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.UserMessage     `json:"data"`
}

// RespContacts wraps a contact-message listing in the standard envelope.
type RespContacts struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.ContactMessage  `json:"data"`
}
