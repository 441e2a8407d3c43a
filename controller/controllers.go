// controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/echo-xaudit/service"

type Controllers struct {
	Audit *AuditController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Audit: NewAuditController(services.Audit),
	}
}
