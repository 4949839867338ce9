package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Transform TransformConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

// TransformConfig 는 말투 변환 관련 설정이다
type TransformConfig struct {
	Endpoint       string // 변환 서비스 엔드포인트 (자체 호스팅 시 이 서버의 /functions/transform-message)
	ServiceKey     string // 변환 서비스 호출에 쓰는 bearer 키
	OpenAIKey      string // 변환 엔드포인트가 쓰는 업스트림 OpenAI 키
	Profile        string // 말투 프로필 이름 (gentle / playful / minimal_edit)
	TimeoutSeconds int    // 변환 호출 타임아웃 (초)
}

type SessionConfig struct {
	Secret string // 세션 토큰 서명 키
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")

	// 환경변수로도 덮어쓸 수 있다 (예: MANITTO_DB_PASSWORD)
	viper.SetEnvPrefix("manitto")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// AutomaticEnv 만으로는 Unmarshal 이 기본값/설정 파일에 없는 키를 보지
	// 못하므로 키마다 명시적으로 바인딩해야 설정 파일 없이도 동작한다
	for _, key := range []string{
		"server.address",
		"db.host", "db.user", "db.password", "db.name", "db.port",
		"transform.endpoint", "transform.servicekey", "transform.openaikey",
		"transform.profile", "transform.timeoutseconds",
		"session.secret",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("transform.profile", "gentle")
	viper.SetDefault("transform.timeoutseconds", 10)

	if err := viper.ReadInConfig(); err != nil {
		// 설정 파일이 없으면 기본값과 환경변수만으로 동작한다
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
