package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// SessionCookieName 은 세션 토큰을 담는 쿠키 이름이다
const SessionCookieName = "manitto_session"

// SessionMaxAge 는 세션 유효 기간이다 (이벤트 기간을 넉넉히 덮는 30일)
const SessionMaxAge = 30 * 24 * time.Hour

// Claims 는 세션 토큰에 담기는 인증된 신원이다
// 요청마다 이 값으로 참가자와 소속 방을 식별한다
type Claims struct {
	UserID   uint   `json:"user_id"`
	UserCode string `json:"user_code"`
	RoomID   uint   `json:"room_id"`
	RoomCode string `json:"room_code"`
	jwt.StandardClaims
}

// GenerateToken 은 새 세션 토큰을 만든다
// 서명 키는 설정에서 주입받는다. 코드에 박아두지 않는다
func GenerateToken(secret []byte, userID uint, userCode string, roomID uint, roomCode string) (string, error) {
	nowTime := time.Now()
	expireTime := nowTime.Add(SessionMaxAge)

	claims := Claims{
		UserID:   userID,
		UserCode: userCode,
		RoomID:   roomID,
		RoomCode: roomCode,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expireTime.Unix(),
			IssuedAt:  nowTime.Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString(secret)
}

// ParseToken 은 세션 토큰을 해석하고 검증한다
func ParseToken(secret []byte, token string) (*Claims, error) {
	tokenClaims, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if tokenClaims != nil {
		if claims, ok := tokenClaims.Claims.(*Claims); ok && tokenClaims.Valid {
			return claims, nil
		}
	}

	return nil, err
}
