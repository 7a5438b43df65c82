package gallery

// ClientScript connects a story page to its live session. It forwards
// events from elements carrying data-on-* markers and swaps the story root
// with each html frame.
const ClientScript = `
(function() {
    'use strict';

    var root = document.getElementById('` + RootID + `');
    if (!root || !root.dataset.live) return;

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;
    var ws = null;

    function send(frame) {
        if (ws && ws.readyState === WebSocket.OPEN) {
            ws.send(JSON.stringify(frame));
        }
    }

    function target(e, name) {
        var el = e.target;
        while (el && el !== root) {
            if (el.dataset && el.dataset.hid && el.getAttribute('data-on-' + name)) return el;
            el = el.parentElement;
        }
        return null;
    }

    function preventDefault(el, name, key) {
        var scope = el.getAttribute('data-pd-' + name);
        if (!scope) return false;
        return scope === 'true' || scope.split(' ').indexOf(key) >= 0;
    }

    root.addEventListener('click', function(e) {
        var el = target(e, 'click');
        if (!el) return;
        if (preventDefault(el, 'click', '')) e.preventDefault();
        if (el.getAttribute('data-sp-click')) e.stopPropagation();
        send({hid: el.dataset.hid, event: 'click'});
    });

    root.addEventListener('keydown', function(e) {
        var el = target(e, 'keydown');
        if (!el) return;
        if (preventDefault(el, 'keydown', e.key)) e.preventDefault();
        send({
            hid: el.dataset.hid, event: 'keydown', key: e.key,
            ctrl: e.ctrlKey, shift: e.shiftKey, alt: e.altKey, meta: e.metaKey
        });
    });

    root.addEventListener('input', function(e) {
        var el = target(e, 'input');
        if (!el) return;
        send({hid: el.dataset.hid, event: 'input', value: el.value});
    });

    function apply(html) {
        var active = document.activeElement;
        var hid = active && root.contains(active) ? active.dataset.hid : null;
        var caret = active && active.selectionStart;
        root.innerHTML = html;
        if (hid) {
            var next = root.querySelector('[data-hid="' + hid + '"]');
            if (next) {
                next.focus();
                if (caret != null && next.setSelectionRange) next.setSelectionRange(caret, caret);
            }
        }
    }

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + root.dataset.live);

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            switch (msg.type) {
                case 'html':
                    apply(msg.html);
                    break;
                case 'error':
                    console.warn('[VangoUI]', msg.error);
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    connect();
})();
`
