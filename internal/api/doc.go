// Package api 는 HTTP 요청 라우팅과 처리를 담당한다.
//
// 이 패키지는 모든 HTTP 핸들러를 포함한다.
// HTTP 요청을 적절한 서비스 호출로 변환하고, 결과를 다시 HTTP 응답으로 바꾼다.
package api
