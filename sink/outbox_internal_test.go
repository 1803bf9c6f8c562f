package sink

import (
	"net/url"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDSN(t *testing.T) {
	u, err := url.Parse("mysql://root:secret@db:3306/netmst?tls=true&timeout=5s&readTimeout=2s")
	require.NoError(t, err)

	dsn, err := mysqlDSN(u)
	require.NoError(t, err)

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "root", cfg.User)
	assert.Equal(t, "secret", cfg.Passwd)
	assert.Equal(t, "tcp", cfg.Net)
	assert.Equal(t, "db:3306", cfg.Addr)
	assert.Equal(t, "netmst", cfg.DBName)
	assert.Equal(t, "true", cfg.TLSConfig)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestMySQLDSN_NoParams(t *testing.T) {
	u, err := url.Parse("mysql://app@localhost:3306/netmst")
	require.NoError(t, err)

	dsn, err := mysqlDSN(u)
	require.NoError(t, err)
	assert.Equal(t, "app@tcp(localhost:3306)/netmst", dsn)
}

func TestMySQLDSN_BadParam(t *testing.T) {
	u, err := url.Parse("mysql://root@db:3306/netmst?timeout=soon")
	require.NoError(t, err)

	_, err = mysqlDSN(u)
	assert.ErrorContains(t, err, "invalid mysql DSN parameters")
}
