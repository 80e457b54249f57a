package auth

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/gomega"
)

func TestCreateAndVerifyToken(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "unit-test-secret"}

	token, err := j.CreateToken(42)

	Expect(err).To(BeNil())
	Expect(token).ToNot(BeEmpty())

	claims, err := j.VerifyToken(token)

	Expect(err).To(BeNil())
	Expect(int(claims["user_id"].(float64))).To(Equal(42))
}

func TestVerifyTokenWithWrongSecret(t *testing.T) {
	RegisterTestingT(t)

	signer := JWT{Secret: "right-secret"}
	verifier := JWT{Secret: "wrong-secret"}

	token, err := signer.CreateToken(42)
	Expect(err).To(BeNil())

	_, err = verifier.VerifyToken(token)

	Expect(err).ToNot(BeNil())
}

func TestVerifyExpiredToken(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "unit-test-secret"}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	tokenString, err := expired.SignedString([]byte(j.Secret))
	Expect(err).To(BeNil())

	_, err = j.VerifyToken(tokenString)

	Expect(err).ToNot(BeNil())
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "unit-test-secret"}

	_, err := j.VerifyToken("not-a-jwt")

	Expect(err).ToNot(BeNil())
}

func TestCreateJwtTokenForUserUsesEnvSecret(t *testing.T) {
	RegisterTestingT(t)

	os.Setenv("JWT_SECRET", "env-secret")
	defer os.Unsetenv("JWT_SECRET")

	token, err := CreateJwtTokenForUser(7)
	Expect(err).To(BeNil())

	claims, err := VerifyJwtToken(token)

	Expect(err).To(BeNil())
	Expect(int(claims["user_id"].(float64))).To(Equal(7))
}
