// Package uploader transfers generated artifacts to the site host over SFTP.
// It uploads exactly the one file it is asked to and touches nothing else on
// the remote side.
package uploader

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/sftp"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"

	"rewindfinds/shopflow/internal/config"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Upload copies localPath to the configured remote path.
func Upload(cfg *config.Config, localPath string) error {
	if cfg.SFTP.Host == "" || cfg.SFTP.User == "" || cfg.SFTP.Password == "" || cfg.SFTP.RemotePath == "" {
		return fmt.Errorf("missing SFTP configuration (host, user, password and remote path are required)")
	}

	addr := fmt.Sprintf("%s:%d", cfg.SFTP.Host, cfg.SFTP.Port)
	sshConfig := &ssh.ClientConfig{
		User: cfg.SFTP.User,
		Auth: []ssh.AuthMethod{ssh.Password(cfg.SFTP.Password)},
		// Shared hosting providers rotate host keys; the operator opted in
		// to password auth over a known host.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	conn, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Warn("Failed to close SSH connection")
		}
	}()

	client, err := sftp.NewClient(conn)
	if err != nil {
		return fmt.Errorf("failed to start SFTP session: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.WithError(err).Warn("Failed to close SFTP session")
		}
	}()

	local, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file: %w", err)
	}
	defer local.Close()

	log.WithFields(logrus.Fields{
		"local":  localPath,
		"remote": cfg.SFTP.RemotePath,
	}).Info("Uploading file")

	remote, err := client.Create(cfg.SFTP.RemotePath)
	if err != nil {
		return fmt.Errorf("failed to create remote file: %w", err)
	}
	defer func() {
		if err := remote.Close(); err != nil {
			log.WithError(err).Warn("Failed to close remote file")
		}
	}()

	if _, err := io.Copy(remote, local); err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	log.Info("Upload complete")
	return nil
}
