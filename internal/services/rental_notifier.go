package services

import (
	"context"
	"fmt"

	"firebase.google.com/go/messaging"

	"vizigoBack/internal/models"
)

// RentalNotifier announces a newly created rental request.
type RentalNotifier interface {
	NotifyRental(ctx context.Context, rentalID string, rental models.RentalRecord) error
}

// FCMRentalNotifier publishes rental requests to a Firebase Cloud Messaging topic.
type FCMRentalNotifier struct {
	Client *messaging.Client
	Topic  string
}

func (n *FCMRentalNotifier) NotifyRental(ctx context.Context, rentalID string, rental models.RentalRecord) error {
	_, err := n.Client.Send(ctx, rentalMessage(n.Topic, rentalID, rental))
	return err
}

func rentalMessage(topic, rentalID string, rental models.RentalRecord) *messaging.Message {
	title := "New rental request"
	body := fmt.Sprintf("%s wants %s from %s to %s", rental.Name, rental.BikeName, rental.FromDate, rental.ToDate)

	return &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"rental_id": rentalID,
			"bike_name": rental.BikeName,
			"from_date": rental.FromDate,
			"to_date":   rental.ToDate,
			"number":    rental.Number,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority_channel",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  body,
					},
					Sound: "default",
				},
			},
		},
	}
}
