// Package middleware 는 HTTP 요청 처리에 쓰이는 미들웨어를 제공한다.
//
// 세션 인증, 요청 로깅처럼 여러 요청에 걸쳐 공통으로 수행되는
// 작업들이 여기에 있다.
package middleware
