package main

import (
	"fmt"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/redirect"
)

type fixture struct {
	label        string
	role         any
	notification domain.Notification
}

func main() {
	engine := redirect.New()

	fixtures := []fixture{
		{
			label: "client approved BOQ, estimator",
			role:  "Estimator",
			notification: domain.Notification{
				Title:    "BOQ Approved by Client",
				Message:  "Client approved the BOQ for Skyline Tower",
				Category: "boq",
				Metadata: domain.Metadata{BOQID: 726},
			},
		},
		{
			label: "materials purchase rejected, site engineer",
			role:  6,
			notification: domain.Notification{
				Title:    "Materials Purchase Rejected",
				Message:  "TD rejected the change request",
				Category: "change_request",
				Metadata: domain.Metadata{CRID: "123"},
			},
		},
		{
			label: "low stock, production manager",
			role:  "Production Manager",
			notification: domain.Notification{
				Title:    "Low Stock Alert",
				Message:  "Cement running low in backup inventory",
				Metadata: domain.Metadata{MaterialID: "77"},
			},
		},
		{
			label: "vendor selection pending, technical director",
			role:  "TD",
			notification: domain.Notification{
				Title:    "Vendor Selection Pending",
				Message:  "Vendor selection awaiting approval",
				Category: "vendor",
				Metadata: domain.Metadata{CRID: "55"},
			},
		},
		{
			label: "legacy link payload, project manager",
			role:  "project_manager",
			notification: domain.Notification{
				Title:   "Reminder",
				Message: "You have a pending BOQ",
				Metadata: domain.Metadata{
					Link: "/boq/42?source=email",
				},
			},
		},
		{
			label: "no destination, unknown role",
			role:  "visitor",
			notification: domain.Notification{
				Title:   "Welcome",
				Message: "Your account is ready",
			},
		},
	}

	for _, f := range fixtures {
		if url, ok := engine.ResolveURL(f.notification, f.role); ok {
			fmt.Printf("%-45s -> %s\n", f.label, url)
		} else {
			fmt.Printf("%-45s -> (default landing page)\n", f.label)
		}
	}
}
