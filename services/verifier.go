package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Principal is a verified caller identity.
type Principal struct {
	SubjectID string
	Email     string
}

// TokenVerifier validates an opaque bearer token with the identity
// provider. Results are not cached; every call hits the provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// CognitoVerifier verifies access tokens against a Cognito user pool.
type CognitoVerifier struct {
	client *cognitoidentityprovider.Client
}

func NewCognitoVerifier(ctx context.Context, region string) (*CognitoVerifier, error) {
	cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &CognitoVerifier{client: cognitoidentityprovider.NewFromConfig(cfg)}, nil
}

func (v *CognitoVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	out, err := v.client.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(token),
	})
	if err != nil {
		log.Println("Token verification failed:", err)
		return nil, ErrInvalidToken
	}

	principal := &Principal{}
	for _, attr := range out.UserAttributes {
		switch aws.ToString(attr.Name) {
		case "sub":
			principal.SubjectID = aws.ToString(attr.Value)
		case "email":
			principal.Email = aws.ToString(attr.Value)
		}
	}
	if principal.SubjectID == "" {
		principal.SubjectID = aws.ToString(out.Username)
	}
	return principal, nil
}
