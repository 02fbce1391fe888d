/*
Package royalty implements the royalty distribution contract of the
provenance system. Every paid event around a token, a marketplace sale or a
direct access payment, is settled here: the token's original owner receives
the royalty share fixed at mint time, the counterparty (seller or current
owner) receives the remainder. Payouts are accumulated per token and kept
readable forever.

The Settle method is wired for the Marketplace contract only and is invoked
as part of a purchase transaction. PayAccess is open to any payer willing to
compensate content access.

# Contract notifications

RoyaltyPaid notification. This notification is produced whenever a royalty
share actually reaches the original owner; settlements where the original
owner is the payee produce no notification.

	RoyaltyPaid
	  - name: tokenID
	    type: Integer
	  - name: recipient
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package royalty
