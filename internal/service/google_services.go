// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/google-services-gen/internal/config"
	"github.com/MKhiriev/google-services-gen/internal/envfile"
	"github.com/MKhiriev/google-services-gen/models"
)

// Environment keys copied into the document.
const (
	KeyMessagingSenderID = "FIREBASE_MESSAGING_SENDER_ID"
	KeyProjectID         = "FIREBASE_PROJECT_ID"
	KeyStorageBucket     = "FIREBASE_STORAGE_BUCKET"
	KeyAndroidAppID      = "FIREBASE_ANDROID_APP_ID"
	KeyAndroidAPIKey     = "FIREBASE_ANDROID_API_KEY"
)

// RecognizedKeys lists every key [BuildGoogleServices] reads, in document
// order.
var RecognizedKeys = []string{
	KeyMessagingSenderID,
	KeyProjectID,
	KeyStorageBucket,
	KeyAndroidAppID,
	KeyAndroidAPIKey,
}

// BuildGoogleServices projects env onto the google-services.json schema.
//
// Each field is looked up by its exact key; an absent key yields the empty
// string. Values are copied verbatim. The package name and configuration
// version come from android; both OAuth client lists are always empty.
func BuildGoogleServices(env envfile.Environment, android config.Android) models.GoogleServices {
	return models.GoogleServices{
		ProjectInfo: models.ProjectInfo{
			ProjectNumber: env.Get(KeyMessagingSenderID),
			ProjectID:     env.Get(KeyProjectID),
			StorageBucket: env.Get(KeyStorageBucket),
		},
		Client: []models.Client{
			{
				ClientInfo: models.ClientInfo{
					MobileSDKAppID: env.Get(KeyAndroidAppID),
					AndroidClientInfo: models.AndroidClientInfo{
						PackageName: android.PackageName,
					},
				},
				OAuthClient: []models.OAuthClient{},
				APIKey: []models.APIKey{
					{CurrentKey: env.Get(KeyAndroidAPIKey)},
				},
				Services: models.ClientServices{
					AppInviteService: models.AppInviteService{
						OtherPlatformOAuthClient: []models.OAuthClient{},
					},
				},
			},
		},
		ConfigurationVersion: android.ConfigurationVersion,
	}
}

// MissingKeys returns the recognized keys absent from env. A key present
// with an empty value is not missing.
func MissingKeys(env envfile.Environment) []string {
	var missing []string
	for _, key := range RecognizedKeys {
		if _, ok := env.Lookup(key); !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
