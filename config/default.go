package config

// DefaultConfigYAML is the embedded fallback configuration. Anything here can
// be overridden by an external config file or ATOLYE_* environment variables.
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"
  base_url: "http://localhost:8080"

database:
  host: "127.0.0.1"
  port: "3306"
  username: "atolye"
  password: "atolye"
  dbname: "atolye"
  charset: "utf8mb4"

jwt:
  secret: "atolye-gizli-anahtar-degistirin"
  expire_hours: 72

email:
  enabled: false
  host: "smtp.example.com"
  port: 587
  username: ""
  password: ""
  from: "siparis@atolyecanta.example"

admin:
  username: "admin"
  password: "atolye2026"
  notify_email: ""
`)
