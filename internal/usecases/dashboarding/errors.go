package dashboarding

import "errors"

var ErrNoOrdersCollection = errors.New("usuário sem tabela de pedidos vinculada")
