package config

import (
	"errors"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrMissingServiceAccount = errors.New("config: firebase service account is incomplete")

// ServiceAccount segue o formato do arquivo JSON de conta de serviço gerado pelo console do Firebase
type ServiceAccount struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	UniverseDomain          string `json:"universe_domain"`
}

func (f Firebase) ServiceAccount() ServiceAccount {
	return ServiceAccount{
		Type:                    f.Type,
		ProjectID:               f.ProjectID,
		PrivateKeyID:            f.PrivateKeyID,
		PrivateKey:              f.PrivateKey,
		ClientEmail:             f.ClientEmail,
		ClientID:                f.ClientID,
		AuthURI:                 f.AuthURI,
		TokenURI:                f.TokenURI,
		AuthProviderX509CertURL: f.AuthProviderCertURL,
		ClientX509CertURL:       f.ClientCertURL,
		UniverseDomain:          f.UniverseDomain,
	}
}

// CredentialsJSON monta o JSON de credenciais a partir das variáveis de ambiente.
// Retorna ErrMissingServiceAccount se faltar algum campo sem o qual a autenticação falharia.
func (f Firebase) CredentialsJSON() ([]byte, error) {
	sa := f.ServiceAccount()

	if strings.TrimSpace(sa.ProjectID) == "" ||
		strings.TrimSpace(sa.PrivateKey) == "" ||
		strings.TrimSpace(sa.ClientEmail) == "" {
		return nil, ErrMissingServiceAccount
	}

	return json.Marshal(sa)
}
