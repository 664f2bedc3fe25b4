package utils

import (
	"context"
	"log"

	"unicare/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMClient is the global Firebase messaging client. Nil when push delivery
// is not configured; callers must tolerate that.
var FCMClient *messaging.Client

// FirebaseInit sets up the Firebase app used for push notifications.
func FirebaseInit() {
	credFile := config.AppConfig.FirebaseCredentials
	if credFile == "" {
		log.Println("FIREBASE_CREDENTIALS not set, push delivery disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credFile))
	if err != nil {
		log.Printf("failed to initialize firebase app: %v", err)
		return
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("failed to initialize firebase messaging: %v", err)
		return
	}
	FCMClient = client
}
